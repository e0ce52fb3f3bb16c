// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the vector SQL
// scalar functions (vec_add, vec_sub, vec_scale, vec_dot, vec_norm,
// vec_angle, vec_cross, vec_text). It intentionally keeps a thin surface so
// other packages can share the same driver instance.
package engine
