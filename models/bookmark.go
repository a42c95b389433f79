// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bookmark is a node of the bookmark tree. Folders have no URL and carry
// their contents in Children.
type Bookmark struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title,omitempty"`
	URL         string     `json:"url,omitempty"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Children    []Bookmark `json:"children,omitempty"`
}

// IsFolder reports whether b is a folder node.
func (b Bookmark) IsFolder() bool {
	return b.URL == ""
}

// CountBookmarks returns the number of non-folder nodes in the tree.
func CountBookmarks(tree []Bookmark) int {
	n := 0
	for _, b := range tree {
		if !b.IsFolder() {
			n++
		}
		n += CountBookmarks(b.Children)
	}
	return n
}
