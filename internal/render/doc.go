// Package render loads output templates and fills in their placeholders.
//
// Templates are plain text with {{name}} placeholders. Names may contain
// letters, digits, underscores and dots ("who.name"). Liquid tags such as
// {{ page.title }} or {% include %} are left alone because they contain
// spaces, so templates can carry Jekyll markup through untouched.
//
// A template may start with a metadata block fenced by +++ lines:
//
//	+++
//	name: post
//	description: Jekyll post
//	ext: md
//	+++
//	---
//	title: "{{title}}"
//	---
//
// The block is YAML and is removed before rendering, so a Jekyll --- front
// matter directly after it is kept. ext sets the extension of the files
// rendered from the template; it defaults to the template file's extension.
//
// Templates are resolved in order:
//  1. --templates <dir> (when given)
//  2. .wp2jekyll/templates/<file> (project-local)
//  3. ~/.config/wp2jekyll/templates/<file> (user global)
//  4. Built-in templates (embedded in binary)
package render
