package vectorstore

import (
	vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
)

func init() {
	// Registers sqlite-vec as an auto-loadable extension on every new
	// mattn/go-sqlite3 connection, making vec_distance_cosine available.
	vec.Auto()
}
