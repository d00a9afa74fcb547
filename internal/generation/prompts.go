package generation

import (
	"fmt"
	"strings"

	"github.com/littlesous/backend/internal/models"
)

const questionsSystemPrompt = "You are a friendly cooking assistant that creates age-appropriate recipe interviews for children. Always respond with valid JSON."

const recipeSystemPrompt = "You are an expert children's cooking instructor that creates safe, fun, age-appropriate recipes. Always respond with valid JSON."

func themeNoun(theme string) string {
	if theme == models.ThemeGirls {
		return "girl"
	}
	return "boy"
}

func themeColors(theme string) string {
	if theme == models.ThemeGirls {
		return "pink and purple"
	}
	return "blue and green"
}

func questionsPrompt(name string, age int, theme string) string {
	return fmt.Sprintf(`Create a fun, age-appropriate recipe interview for %s, a %d-year-old %s.

Generate 6-8 interview questions that will help create the perfect recipe. Consider:
- Age-appropriate language and concepts
- Theme preferences (%s theme)
- Skill level appropriate for age %d
- Fun and engaging questions

Return a JSON object of this shape:
{
  "questions": [
    {
      "id": "meal_type",
      "question": "What type of yummy food should we make today?",
      "type": "single_choice",
      "options": ["Breakfast", "Lunch", "Dinner", "Dessert"],
      "required": true
    }
  ]
}
Question types must be one of: single_choice, multiple_choice, text, number.`,
		name, age, themeNoun(theme), theme, age)
}

func recipePrompt(req RecipeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Create a personalized recipe for %s, a %d-year-old %s.

Requirements:
- Meal type: %s
- Skill level: %s
- Age-appropriate for %d years old
`, req.ChildName, req.Age, themeNoun(req.Theme), req.MealType, req.SkillLevel, req.Age)

	cookingTime := req.CookingTime
	if cookingTime == "" {
		cookingTime = "flexible"
	}
	fmt.Fprintf(&b, "- Cooking time: %s\n", cookingTime)
	fmt.Fprintf(&b, "- Theme: %s (%s theme)\n", req.Theme, themeColors(req.Theme))
	if req.Preferences != "" {
		fmt.Fprintf(&b, "- Preferences: %s\n", req.Preferences)
	}
	if req.SpecialOccasion != "" {
		fmt.Fprintf(&b, "- Special occasion: %s\n", req.SpecialOccasion)
	}

	b.WriteString(`
Create a fun, engaging recipe that:
1. Uses age-appropriate ingredients and techniques
2. Has clear, simple instructions
3. Includes helpful tips for young cooks
4. Creates a memorable cooking experience

Return JSON with this exact structure:
{
  "title": "Recipe Name",
  "description": "Brief description of the recipe",
  "ingredients": [{"item": "ingredient name", "amount": "measurement", "notes": "optional kid-friendly note"}],
  "instructions": [{"step": 1, "instruction": "Clear instruction", "tip": "optional helpful tip"}],
  "cookingTime": 30,
  "difficulty": "beginner",
  "category": "breakfast",
  "childMemoryPrompt": "A prompt to help the child write about their cooking experience"
}
Difficulty must be one of beginner, intermediate, advanced.`)

	return b.String()
}

func imagePrompt(title string, age int, theme string) string {
	style := "blue and green themed, adventurous and fun"
	if theme == models.ThemeGirls {
		style = "pink and purple themed, cute and whimsical"
	}
	return fmt.Sprintf("A beautiful, appetizing photo of %s, styled for a %d-year-old %s. %s presentation, child-friendly plating, bright and colorful, food photography style, well-lit, appealing to children.",
		title, age, themeNoun(theme), style)
}
