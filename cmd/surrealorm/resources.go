package main

import "github.com/madeindigio/surrealorm/pkg/migrator"

// codebaseResources is the "right side" of every command's diff: the schema
// this project's models declare, rebuilt fresh on every invocation (spec
// §4.5.1 DbResources). A project embedding surrealorm replaces this function
// with one that calls migrator.ResourcesFromModels against its own
// schema.Derive[T]() models, e.g.:
//
//	return migrator.ResourcesFromModels(
//		schema.Derive[User](),
//		schema.Derive[Post](),
//	).Build()
//
// Shipped empty, so a freshly scaffolded project's commands diff against an
// empty model set rather than failing for lack of models.
func codebaseResources() migrator.DbResources {
	return migrator.NewResourceBuilder().Build()
}
