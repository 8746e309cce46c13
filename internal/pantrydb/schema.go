// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package pantrydb

import "google.golang.org/genai"

// DetectedItemsSchema is the response schema for fridge photo scans. The
// model is asked for an array only; prose around it is tolerated by the
// response parser.
var DetectedItemsSchema = &genai.Schema{
	Type:        "array",
	Description: "The food items detected in the image.",
	Items: &genai.Schema{
		Type:        "object",
		Description: "A food item detected in the image.",
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        "string",
				Description: "The name of the food item.",
			},
			"qty": {
				Type:        "string",
				Description: "The visible amount of the item, e.g. \"2 pcs\" or \"1 liter\".",
			},
			"expiry": {
				Type:        "string",
				Description: "The estimated days the item stays usable, e.g. \"7 days\".",
			},
		},
		Required: []string{"name"},
	},
}

// GeneratedRecipesSchema is the response schema for recipe generation.
var GeneratedRecipesSchema = &genai.Schema{
	Type:        "array",
	Description: "Recipes that can be prepared from the given ingredients.",
	Items: &genai.Schema{
		Type:        "object",
		Description: "A suggested recipe.",
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        "string",
				Description: "The title of the recipe.",
			},
			"ingredients": {
				Type:        "array",
				Description: "The ingredients of the recipe.",
				Items: &genai.Schema{
					Type:        "object",
					Description: "An ingredient in the recipe.",
					Properties: map[string]*genai.Schema{
						"name": {
							Type:        "string",
							Description: "The name of the ingredient.",
						},
						"qty": {
							Type:        "string",
							Description: "The quantity of the ingredient.",
						},
					},
					Required: []string{"name", "qty"},
				},
			},
			"instructions": {
				Type:        "string",
				Description: "Step by step preparation instructions.",
			},
			"time": {
				Type:        "string",
				Description: "The estimated preparation time, e.g. \"20 min\".",
			},
			"match": {
				Type:        "string",
				Description: "How well the recipe matches the pantry, e.g. \"90%\".",
			},
			"color": {
				Type:        "string",
				Description: "A display accent color for the recipe as a hex string.",
			},
		},
		Required: []string{"title", "ingredients", "instructions", "time", "match", "color"},
	},
}
