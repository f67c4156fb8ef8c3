package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gaon-interior/parser"
)

func TestFirstImageURL(t *testing.T) {
	body := `<p>주방 리모델링 현장입니다.</p>
<img src="https://res.cloudinary.com/gaon/image/upload/v1/portfolio/kitchen.jpg" alt="">
<img src="https://res.cloudinary.com/gaon/image/upload/v1/portfolio/kitchen2.jpg">`

	got := parser.FirstImageURL(body, "")
	assert.Equal(t, "https://res.cloudinary.com/gaon/image/upload/v1/portfolio/kitchen.jpg", got)
}

func TestFirstImageURLResolvesRelative(t *testing.T) {
	body := `<img src="/uploads/a.jpg">`
	got := parser.FirstImageURL(body, "https://gaon-interior.com/insight/1")
	assert.Equal(t, "https://gaon-interior.com/uploads/a.jpg", got)
}

func TestFirstImageURLFallsBackToOGImage(t *testing.T) {
	body := `<html><head>
<meta property="og:image" content="https://res.cloudinary.com/gaon/image/upload/v1/og.jpg">
</head><body><p>no inline image</p></body></html>`

	got := parser.FirstImageURL(body, "")
	assert.Equal(t, "https://res.cloudinary.com/gaon/image/upload/v1/og.jpg", got)
}

func TestFirstImageURLEmpty(t *testing.T) {
	assert.Equal(t, "", parser.FirstImageURL("<p>텍스트만 있는 글</p>", ""))
	assert.Equal(t, "", parser.FirstImageURL("", ""))
	assert.Equal(t, "", parser.FirstImageURL(`<img src="   ">`, ""))
}
