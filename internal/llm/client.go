// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package llm wraps the external model service behind two narrow calls,
// one per mode: vision extraction of pantry items and text generation of
// recipes. Both return the raw response text; turning that text into typed
// records is the parser's job, so a parse failure is always a value the
// caller inspects, never an exception from the transport.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
)

const model = "gemini-2.5-flash"

// Scanner extracts food items from fridge photographs.
type Scanner struct {
	genAI *genai.Client
}

func NewScanner(genAI *genai.Client) *Scanner {
	return &Scanner{genAI: genAI}
}

// ScanImage submits a JPEG to the vision model and returns the raw response
// text. The instruction contract requests a bare JSON array of
// {name, qty, expiry} records and nothing else.
func (s *Scanner) ScanImage(ctx context.Context, imageJPEG []byte) (string, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(imageJPEG, "image/jpeg"),
	}, genai.RoleUser)

	res, err := s.genAI.Models.GenerateContent(ctx, model, []*genai.Content{content}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(ScanImagePrompt(), genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    pantrydb.DetectedItemsSchema,
	})
	if err != nil {
		return "", fmt.Errorf("llm: scanning image: %w", err)
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("llm: unexpected response from vision model: %v", res)
	}
	return text, nil
}

// RecipeGenerator suggests recipes from a set of on-hand ingredients.
type RecipeGenerator struct {
	genAI *genai.Client
}

func NewRecipeGenerator(genAI *genai.Client) *RecipeGenerator {
	return &RecipeGenerator{genAI: genAI}
}

// GenerateRecipes asks the text model for recipe suggestions and returns
// the raw response text, expected to contain one JSON array matching the
// fixed output schema.
func (g *RecipeGenerator) GenerateRecipes(ctx context.Context, ingredients []string) (string, error) {
	res, err := g.genAI.Models.GenerateContent(ctx, model, []*genai.Content{
		genai.NewContentFromText(GenerateRecipesPrompt(ingredients), genai.RoleUser),
	}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   pantrydb.GeneratedRecipesSchema,
	})
	if err != nil {
		return "", fmt.Errorf("llm: generating recipes: %w", err)
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("llm: unexpected response from generation model: %v", res)
	}
	return text, nil
}
