// Package derive computes the fields a post listing shows without rendering
// HTML: the plain-text excerpt and the estimated reading time.
package derive
