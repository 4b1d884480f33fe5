// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (layout, results, manifests) and contracts only.
package domain
