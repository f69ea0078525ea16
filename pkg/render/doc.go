// Package render turns an ordered sequence of field descriptors into themed
// HTML.
//
// A Parser walks the descriptors once and emits one fragment per field by
// resolving a named template for the active theme and executing it through a
// template.TemplateRenderer. The only state carried across descriptors is
// whether a fieldset is open; it lives in the Render call, so one Parser can
// serve concurrent renders.
//
// Collaborators are injected through options:
//
//	parser, err := render.New(
//		render.WithDefaultTheme("default"),
//		render.WithWidgets(widgets.NewRegistry()),
//		render.WithLogger(logger),
//	)
//	result, err := parser.Render(ctx, fields, render.RenderOptions{Theme: "acme"})
//
// Stylesheets of a non-default theme are returned in Result.Stylesheets rather
// than written into the document; callers decide whether to emit
// Result.HeadLinks.
package render
