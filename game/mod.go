package game

import "sync"

var (
	standardMap *Map
	mapOnce     sync.Once
)

// StandardMap returns the shared board. It is built once and never modified,
// so every View and search can read it concurrently.
func StandardMap() *Map {
	mapOnce.Do(func() {
		standardMap = CreateMap()
	})
	return standardMap
}
