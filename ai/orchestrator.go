// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ia-local/revendications/models"
)

// Orchestrator coordinates the text and image providers: bounded retries
// per call, parallel fan-out for full analyses, and failure payloads
// instead of errors escaping the HTTP boundary.
type Orchestrator struct {
	groq   *GroqClient
	gemini *GeminiClient // nil when image generation is disabled

	textPolicy  Policy
	imagePolicy Policy
}

func NewOrchestrator(groq *GroqClient, gemini *GeminiClient) *Orchestrator {
	return &Orchestrator{
		groq:        groq,
		gemini:      gemini,
		textPolicy:  TextPolicy(),
		imagePolicy: ImagePolicy(),
	}
}

// ImageEnabled reports whether an image provider credential is configured.
func (o *Orchestrator) ImageEnabled() bool {
	return o.gemini != nil
}

// Detail generates the stage-one analysis of a demand's literal text.
func (o *Orchestrator) Detail(ctx context.Context, revendication string) (string, error) {
	return call(ctx, o.textPolicy, "detail", func() (string, error) {
		return o.groq.ChatCompletion(ctx, detailSystem, detailPrompt(revendication), 0.7)
	})
}

// Optimise generates the stage-two "solution" from a stage-one detail.
// Chained by the caller, not by FullAnalysis: it is a separate idempotent
// operation.
func (o *Orchestrator) Optimise(ctx context.Context, detail string) (string, error) {
	return call(ctx, o.textPolicy, "optimise", func() (string, error) {
		return o.groq.ChatCompletion(ctx, optimiseSystem, optimisePrompt(detail), 0.5)
	})
}

// FullAnalysis runs the text and image branches in parallel and joins them.
// It always produces a response object: text-branch exhaustion is embedded
// as an error payload in the detail field, and MediaURL is nil whenever the
// image branch ended disabled or in error.
func (o *Orchestrator) FullAnalysis(ctx context.Context, topic string) models.FullAnalysisResponse {
	var (
		detail   string
		mediaURL *string
	)

	var g errgroup.Group

	g.Go(func() error {
		text, err := o.Detail(ctx, topic)
		if err != nil {
			slog.Error("text analysis failed after retries", "error", err)
			text = fmt.Sprintf(`<div class="error-message">Erreur: Le service d'analyse textuelle (Groq) a échoué. %s</div>`, err.Error())
		}
		detail = text
		return nil
	})

	g.Go(func() error {
		if o.gemini == nil {
			slog.Info("image generation disabled, skipping image branch")
			return nil
		}
		uri, err := call(ctx, o.imagePolicy, "image", func() (string, error) {
			return o.gemini.GenerateImage(ctx, imagePrompt(topic))
		})
		if err != nil {
			slog.Error("image generation failed after retries", "error", err)
			return nil
		}
		mediaURL = &uri
		return nil
	})

	// Branches report failure through their payloads, never as errors.
	g.Wait()

	return models.FullAnalysisResponse{
		Success:  true,
		Detail:   detail,
		MediaURL: mediaURL,
	}
}
