package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node of the category tree.
type Category struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	ParentID    *uuid.UUID  `json:"parent_id,omitempty"`
	Level       int         `json:"level"`
	SortOrder   int         `json:"sort_order"`
	IsFeatured  bool        `json:"is_featured"`
	IsActive    bool        `json:"is_active"`
	Children    []*Category `json:"children,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AttachParent sets the parent reference and derives Level from it.
// A nil parent makes the category a root at level 0.
func (c *Category) AttachParent(parent *Category) {
	if parent == nil {
		c.ParentID = nil
		c.Level = 0

		return
	}

	id := parent.ID
	c.ParentID = &id
	c.Level = parent.Level + 1
}

// BuildCategoryTree nests a flat list by ParentID. Orphans become roots.
func BuildCategoryTree(flat []*Category) []*Category {
	byID := make(map[uuid.UUID]*Category, len(flat))
	for _, c := range flat {
		c.Children = nil
		byID[c.ID] = c
	}

	roots := make([]*Category, 0)
	for _, c := range flat {
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Children = append(parent.Children, c)

				continue
			}
		}
		roots = append(roots, c)
	}

	return roots
}

// Brand is a flat reference entity with a unique name.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Website     string    `json:"website,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
