// Package parser extracts a thumbnail candidate from an insight body.
// 본문은 에디터가 저장한 HTML 이고, 이미지는 이미 Cloudinary 에 올라간
// 자산이므로 네트워크 확인 없이 첫 이미지를 썸네일로 쓴다.
package parser

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// FirstImageURL returns the first <img src> of the document, resolved
// against baseURL when relative. When the body has no inline image the
// og:image meta tag is used as a fallback. An empty string means the
// document has no usable thumbnail.
func FirstImageURL(htmlStr string, baseURL string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var base *url.URL
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			base = u
		}
	}

	if src := findFirstImg(doc); src != "" {
		return resolveURL(src, base)
	}
	if src := findMetaContent(doc, "property", "og:image"); src != "" {
		return resolveURL(src, base)
	}
	return ""
}

func findFirstImg(root *html.Node) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "img" {
			for _, a := range n.Attr {
				if strings.ToLower(a.Key) == "src" && strings.TrimSpace(a.Val) != "" {
					result = strings.TrimSpace(a.Val)
					return
				}
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}

func findMetaContent(root *html.Node, key, name string) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "meta" {
			var attrValue string
			var content string
			for _, a := range n.Attr {
				keyLower := strings.ToLower(a.Key)
				if keyLower == key {
					attrValue = strings.ToLower(a.Val)
				} else if keyLower == "content" {
					content = a.Val
				}
			}
			if content != "" && attrValue == name {
				result = content
				return
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}

func resolveURL(src string, base *url.URL) string {
	parsed, err := url.Parse(src)
	if err != nil {
		return src
	}
	if parsed.IsAbs() || base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}
