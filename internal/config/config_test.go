package config

import "testing"

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := fromEnv(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultPlayers != 2 || cfg.Debug || cfg.DeckSeed != nil {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.RequireBotToken(); err == nil {
		t.Fatal("expected missing token error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg, err := fromEnv(env(map[string]string{
		"BOT_TOKEN":       "abc",
		"DEFAULT_PLAYERS": "9",
		"DEBUG":           "true",
		"DECK_SEED":       "-12",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BotToken != "abc" || cfg.RequireBotToken() != nil {
		t.Fatalf("unexpected token %q", cfg.BotToken)
	}
	if cfg.DefaultPlayers != 6 {
		t.Fatalf("expected players clamped to 6, got %d", cfg.DefaultPlayers)
	}
	if !cfg.Debug {
		t.Fatal("expected debug on")
	}
	if cfg.DeckSeed == nil || *cfg.DeckSeed != -12 {
		t.Fatalf("unexpected seed %v", cfg.DeckSeed)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	for _, k := range []string{"DEFAULT_PLAYERS", "DEBUG", "DECK_SEED"} {
		if _, err := fromEnv(env(map[string]string{k: "nope"})); err == nil {
			t.Fatalf("expected error for malformed %s", k)
		}
	}
}

func TestRand(t *testing.T) {
	cfg, _ := fromEnv(env(nil))
	if cfg.Rand() != nil {
		t.Fatal("expected nil source without a seed")
	}

	cfg, _ = fromEnv(env(map[string]string{"DECK_SEED": "5"}))
	a, b := cfg.Rand(), cfg.Rand()
	if a.Int63() != b.Int63() {
		t.Fatal("expected equal sequences for the same seed")
	}
}
