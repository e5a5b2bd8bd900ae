package cache

import (
	"context"
	"fmt"
)

// RouteCache stores resolved routes as JSON. Implementations log and swallow
// backend failures so a broken cache only costs a recompute.
type RouteCache interface {
	// Get decodes the cached value for key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, val any)
	Close() error
}

// RouteKey identifies a recipe route for one store layout.
func RouteKey(recipeID, storeID uint, layoutVersion string, includePairing bool) string {
	pairing := 0
	if includePairing {
		pairing = 1
	}
	return fmt.Sprintf("route:v1:recipe:%d:store:%d:layout:%s:pairing:%d", recipeID, storeID, layoutVersion, pairing)
}

type noop struct{}

// Noop returns a cache that never hits.
func Noop() RouteCache { return noop{} }

func (noop) Get(context.Context, string, any) bool { return false }
func (noop) Set(context.Context, string, any)      {}
func (noop) Close() error                          { return nil }
