// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package llm

import (
	"fmt"
	"strings"
)

func ScanImagePrompt() string {
	return scanImagePrompt
}

const scanImagePrompt = `Act as a fridge inventory assistant. List all food items visible in this image.
Return ONLY a JSON array with this exact structure: [{"name": "item", "qty": "amount", "expiry": "days left"}].
If no food items are found, return [].
Do not include any text or markdown formatting before or after the JSON.
`

func GenerateRecipesPrompt(ingredients []string) string {
	return fmt.Sprintf(generateRecipesPrompt, strings.Join(ingredients, ", "))
}

const generateRecipesPrompt = `I have the following ingredients in my fridge: %s.
Suggest 3 delicious recipes I can make with these.
Return ONLY a JSON array. Structure:
[{
  "title": "Recipe Name",
  "ingredients": [{"name": "Item1", "qty": "1 cup"}, {"name": "Item2", "qty": "200g"}],
  "instructions": "Step by step...",
  "time": "20 min",
  "match": "90%%",
  "color": "#FF5733"
}]
`
