// Package binder fills request structs from the query string, chi path
// parameters and JSON bodies.
//
// Struct fields are matched by tag (`query:"page"`, `path:"id"`); untagged
// fields use the lowercased field name and `-` skips a field. JSON bodies use
// the json tags and reject unknown fields.
//
//	type listRequest struct {
//		Search   string `query:"q"`
//		Page     int    `query:"page"`
//		PageSize int    `query:"page_size"`
//	}
//
//	var req listRequest
//	if err := binder.Bind(r, &req, binder.Query()); err != nil {
//		return err
//	}
package binder
