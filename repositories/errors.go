package repositories

import "errors"

// ErrNotFound is returned when a product or category id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrCategoryInUse is returned when deleting a category that still has
// dependent products.
var ErrCategoryInUse = errors.New("category has dependent products")
