// Package blockcss renders block style attributes into minified CSS.
//
// # Builder
//
// A Builder accumulates declarations for one selector at a time and flushes
// them as a rule when the selector changes or output is requested:
//
//	b := blockcss.New()
//	b.SetSelector(".kb-row-layout-id_abc").
//		AddProperty("padding-top", "10px").
//		AddProperty("margin", "").              // empty, dropped
//		AddProperty("border-top-left-radius", "4px")
//	css := b.CSSOutput()
//	// .kb-row-layout-id_abc{padding-top:10px;border-top-left-radius:4px;-webkit-border-top-left-radius:4px;-moz-border-radius-topleft:4px;}
//
// Responsive values hold one value per device tier and resolve with the
// mobile to tablet to desktop cascade:
//
//	size := blockcss.Responsive[any]{Desktop: 18, Tablet: 16}
//	v, _ := blockcss.RenderSize(blockcss.DeviceMobile, size, "px") // "16px"
//
// The builder never wraps output in @media. Set a media marker with
// SetMediaQuery and read the routed text back with MediaQueryOutput; wrap it
// with WrapMedia.
//
// # Documents
//
// Render turns YAML block style documents into one stylesheet each:
//
//	result, err := blockcss.Render(blockcss.Config{
//		SourceDir: "blocks",
//		OutputDir: "dist/css",
//		Includes:  []string{"**/*.yaml"},
//	})
//
// Lint reports values in those documents that the builder would drop:
//
//	result, err := blockcss.Lint(blockcss.LintConfig{
//		SourceDir: "blocks",
//		ScanPaths: []string{"**/*.yaml"},
//	})
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/blockcss/cmd/blockcss@latest
package blockcss
