package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUnmarshal(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestResolveURL_FirstValidWins(t *testing.T) {
	url, ok := ResolveURL([]URLCandidate{
		{Source: "product_url", Value: "not a url"},
		{Source: "url", Value: "https://shop.example/p/1"},
		{Source: "permalink", Value: "https://shop.example/p/2"},
	})

	assert.True(t, ok)
	assert.Equal(t, "https://shop.example/p/1", url)
}

func TestResolveURL_SkipsEmptyAndRelative(t *testing.T) {
	url, ok := ResolveURL([]URLCandidate{
		{Source: "product_url", Value: ""},
		{Source: "url", Value: "/products/mug"}, // relativa: sin esquema ni host
		{Source: "link", Value: "https://shop.example/mug"},
	})

	assert.True(t, ok)
	assert.Equal(t, "https://shop.example/mug", url)
}

func TestResolveURL_NoneValid(t *testing.T) {
	url, ok := ResolveURL([]URLCandidate{
		{Source: "product_url", Value: "nope"},
		{Source: "url", Value: ""},
	})

	assert.False(t, ok)
	assert.Equal(t, "", url)
}

func TestProductURLCandidates_PriorityOrder(t *testing.T) {
	product := mustUnmarshal(t, `{
		"url": "https://shop.example/via-url",
		"product_url": "https://shop.example/via-product-url"
	}`)

	// product_url tiene prioridad sobre url.
	url, ok := ResolveURL(ProductURLCandidates(product))
	assert.True(t, ok)
	assert.Equal(t, "https://shop.example/via-product-url", url)
}

func TestProductImageCandidates_NestedAndIndexedSources(t *testing.T) {
	product := mustUnmarshal(t, `{
		"images": [{"url": "https://cdn.example/first.png"}],
		"image": {"large": "https://cdn.example/large.png"}
	}`)

	// images.0.url va antes que image.large en la cadena.
	url, ok := ResolveURL(ProductImageCandidates(product))
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/first.png", url)
}

func TestProductImageCandidates_ImageURLFirst(t *testing.T) {
	product := mustUnmarshal(t, `{
		"image": {"url": "https://cdn.example/canonical.png"},
		"thumbnail": "https://cdn.example/thumb.png"
	}`)

	url, ok := ResolveURL(ProductImageCandidates(product))
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/canonical.png", url)
}

func TestProductImageCandidates_EmptyPayload(t *testing.T) {
	_, ok := ResolveURL(ProductImageCandidates(map[string]interface{}{}))
	assert.False(t, ok)
}

func TestBuildShopURL(t *testing.T) {
	assert.Equal(t,
		"https://shop.example/products/widget",
		BuildShopURL("shop.example", "widget"),
	)
}
