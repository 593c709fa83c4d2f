package strata

import (
	"github.com/tsawler/strata/blocks"
	"github.com/tsawler/strata/classify"
	"github.com/tsawler/strata/lang"
	"github.com/tsawler/strata/outline"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Pipeline stage configuration
	detectLanguage bool
	blocks         blocks.Config
	lang           lang.Config
	classify       classify.Config
	outline        outline.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		detectLanguage: true,
		blocks:         blocks.DefaultConfig(),
		lang:           lang.DefaultConfig(),
		classify:       classify.DefaultConfig(),
		outline:        outline.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		detectLanguage: o.detectLanguage,
		blocks:         o.blocks,
		lang:           o.lang,
		classify:       o.classify,
		outline:        o.outline,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
