// Package analyze finds template files and their annotated declarations.
//
// It uses golang.org/x/tools/go/packages to resolve package patterns to
// directories and files. Template files are excluded from normal builds by a
// build tag, so they show up among a package's ignored files; a file is a
// template file when its //go:build constraint requires the tag.
//
// Key types:
//   - PackageInfo: a package with the template files found in it
//   - TemplateFile: a parsed template file
//   - Template: one annotated declaration with its byte span in the file
package analyze
