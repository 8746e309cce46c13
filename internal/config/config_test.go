package config

import "testing"

const testYAML = `
google:
  project: test-project
  capturesbucket: test-project-captures
server:
  address: ":8080"
recipes:
  shoppinglist: true
smtp:
  host: smtp.example.com
  port: 587
  email: noreply@example.com
`

func TestLoad(t *testing.T) {
	t.Run("parses yaml defaults", func(t *testing.T) {
		conf, err := Load([]byte(testYAML))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conf.Google.Project != "test-project" {
			t.Fatalf("unexpected project: %q", conf.Google.Project)
		}
		if conf.Server.Address != ":8080" {
			t.Fatalf("unexpected address: %q", conf.Server.Address)
		}
		if !conf.Recipes.IncludeShoppingList {
			t.Fatal("expected shopping list inclusion to be enabled")
		}
		if conf.SMTP.Port != 587 {
			t.Fatalf("unexpected smtp port: %d", conf.SMTP.Port)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("MYFRIDGEAI_GOOGLE_PROJECT", "prod-project")
		conf, err := Load([]byte(testYAML))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conf.Google.Project != "prod-project" {
			t.Fatalf("expected environment override, got %q", conf.Google.Project)
		}
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		if _, err := Load([]byte("google: [")); err == nil {
			t.Fatal("expected a parse error")
		}
	})
}
