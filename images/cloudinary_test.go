package images_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gaon-interior/images"
)

func TestDeliver(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"plain delivery url",
			"https://res.cloudinary.com/gaon/image/upload/v1720000000/portfolio/living.jpg",
			"https://res.cloudinary.com/gaon/image/upload/f_auto,q_auto/v1720000000/portfolio/living.jpg",
		},
		{
			"already transformed",
			"https://res.cloudinary.com/gaon/image/upload/f_auto,q_auto/v1/a.jpg",
			"https://res.cloudinary.com/gaon/image/upload/f_auto,q_auto/v1/a.jpg",
		},
		{
			"width transform kept",
			"https://res.cloudinary.com/gaon/image/upload/w_800/v1/a.jpg",
			"https://res.cloudinary.com/gaon/image/upload/w_800/v1/a.jpg",
		},
		{
			"non cloudinary",
			"https://example.com/image/upload/a.jpg",
			"https://example.com/image/upload/a.jpg",
		},
		{
			"raw upload untouched",
			"https://res.cloudinary.com/gaon/raw/upload/v1/doc.pdf",
			"https://res.cloudinary.com/gaon/raw/upload/v1/doc.pdf",
		},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, images.Deliver(tc.in))
		})
	}
}

func TestDeliverIsIdempotent(t *testing.T) {
	in := "https://res.cloudinary.com/gaon/image/upload/v1/portfolio/kitchen.jpg"
	once := images.Deliver(in)
	assert.Equal(t, once, images.Deliver(once))
}
