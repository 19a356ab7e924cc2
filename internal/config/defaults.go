package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in platformer configuration.
// It mirrors defaults/platformer.yaml and is used if the embedded file fails to parse.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:        0.5,
			JumpImpulse:    -5.0,
			MoveSpeed:      1.5,
			StompBounce:    -3.0,
			StompTolerance: 1.0,
		},
		Player: PlayerConfig{
			Width:           3,
			Height:          2,
			SpawnX:          5.0,
			SpawnFromBottom: 5,
		},
		Hearts: HeartsConfig{
			DropChance: 0.1,
			Drift:      -0.2,
		},
		Boss: BossConfig{
			Every:          10,
			RegenSeconds:   5,
			TimeCapSeconds: 20,
			WinScore:       3,
			PlayerChance:   0.4,
			BossChance:     0.3,
			ResultSeconds:  2,
		},
		Campaign: CampaignConfig{
			StartLevel: 1,
		},
	}
}
