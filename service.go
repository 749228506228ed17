package web2md

import (
	"context"

	"github.com/alnah/go-web2md/internal/pipeline"
)

// Compile-time interface checks.
var (
	_ pageFetcher              = (*rodFetcher)(nil)
	_ htmlConverter            = (*kaufmannConverter)(nil)
	_ pipeline.Reconstructor   = (*pipeline.HeuristicReconstructor)(nil)
	_ pipeline.PostProcessor   = (*pipeline.MarkdownPostProcessor)(nil)
	_ pipeline.PreviewRenderer = (*pipeline.GoldmarkPreviewRenderer)(nil)
)

// Service salvages web pages into clean markdown. It owns a browser
// instance (created lazily on the first URL fetch) and is safe to reuse
// across calls; it is not safe for concurrent use.
type Service struct {
	cfg             serviceConfig
	fetcher         pageFetcher
	converter       htmlConverter
	reconstructor   pipeline.Reconstructor
	postProcessor   pipeline.PostProcessor
	previewRenderer pipeline.PreviewRenderer
}

// New creates a Service with the given options.
func New(opts ...Option) *Service {
	cfg := serviceConfig{
		timeout: defaultTimeout,
		fetch:   DefaultFetchSettings(),
		convert: DefaultConvertSettings(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service{
		cfg:             cfg,
		reconstructor:   &pipeline.HeuristicReconstructor{},
		postProcessor:   &pipeline.MarkdownPostProcessor{},
		previewRenderer: pipeline.NewGoldmarkPreviewRenderer(),
	}
}

// Salvage runs the pipeline for one input: fetch (URL only), convert
// (URL and HTML), then the repair passes. The context bounds the whole
// operation together with the configured timeout.
func (s *Service) Salvage(ctx context.Context, in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	htmlContent := in.HTML
	if in.URL != "" {
		if s.fetcher == nil {
			s.fetcher = newRodFetcher(s.cfg.fetch, s.cfg.timeout)
		}
		fetched, err := s.fetcher.FetchHTML(ctx, in.URL)
		if err != nil {
			return nil, err
		}
		htmlContent = fetched
	}

	markdown := in.Markdown
	if htmlContent != "" {
		if s.converter == nil {
			s.converter = newKaufmannConverter(s.cfg.convert)
		}
		converted, err := s.converter.ToMarkdown(ctx, htmlContent)
		if err != nil {
			return nil, err
		}
		markdown = converted
	}

	markdown = s.reconstructor.ReconstructCodeBlocks(ctx, markdown)
	markdown = s.postProcessor.PostProcess(ctx, markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Markdown: []byte(markdown)}

	if in.Preview {
		preview, err := s.previewRenderer.RenderPreview(ctx, markdown)
		if err != nil {
			return nil, err
		}
		res.PreviewHTML = []byte(preview)
	}

	return res, nil
}

// Close releases the browser instance, if one was started.
func (s *Service) Close() error {
	if s.fetcher == nil {
		return nil
	}
	err := s.fetcher.Close()
	s.fetcher = nil
	return err
}
