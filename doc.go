// Package web2md salvages web pages into clean markdown using headless Chrome.
//
// The pipeline fetches a page with go-rod, converts the HTML to markdown,
// then repairs the damage generic HTML-to-markdown conversion does to code:
// passages that lost their fences are re-identified line by line, grouped
// into blocks, and re-wrapped in fences tagged with a guessed language.
// A final cleanup pass removes residual <pre><code> spans and duplicated
// navigation boilerplate.
//
// Basic usage:
//
//	svc := web2md.New()
//	defer svc.Close()
//
//	res, err := svc.Salvage(ctx, web2md.Input{URL: "https://example.com/docs"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("docs.md", res.Markdown, 0o644)
//
// Pages that only need their markdown repaired (no fetch, no conversion)
// can pass the text directly:
//
//	res, err := svc.Salvage(ctx, web2md.Input{Markdown: broken})
package web2md
