// Package config provides YAML-based configuration for the platformer:
// physics tunables, heart drops, boss encounter rules and campaign pacing,
// with difficulty presets and a file watcher for live reloads.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PlatformerConfig contains all tunables for the platformer campaign.
type PlatformerConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Hearts   HeartsConfig   `yaml:"hearts"`
	Boss     BossConfig     `yaml:"boss"`
	Campaign CampaignConfig `yaml:"campaign"`
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Added to vy every tick
	JumpImpulse    float64 `yaml:"jump_impulse"`    // vy set by a jump (negative is up)
	MoveSpeed      float64 `yaml:"move_speed"`      // Base horizontal speed per tick
	StompBounce    float64 `yaml:"stomp_bounce"`    // vy after stomping an enemy
	StompTolerance float64 `yaml:"stomp_tolerance"` // Slack below an enemy's top that still counts as a stomp
}

// PlayerConfig defines the player's box and spawn pose.
type PlayerConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnFromBottom int     `yaml:"spawn_from_bottom"` // Spawn y is screen height minus this
}

// HeartsConfig defines the bonus hearts dropped by stomped enemies.
type HeartsConfig struct {
	DropChance float64 `yaml:"drop_chance"`
	Drift      float64 `yaml:"drift"`
}

// BossConfig defines the symbol-collection duel.
type BossConfig struct {
	Every          int     `yaml:"every"`         // Duel before every Nth level
	RegenSeconds   float64 `yaml:"regen_seconds"` // Board redraw interval
	TimeCapSeconds float64 `yaml:"time_cap_seconds"`
	WinScore       int     `yaml:"win_score"`
	PlayerChance   float64 `yaml:"player_chance"` // Probability a cell holds a player mark
	BossChance     float64 `yaml:"boss_chance"`   // Probability a cell holds a boss mark
	ResultSeconds  float64 `yaml:"result_seconds"`
}

// CampaignConfig defines campaign-wide settings.
type CampaignConfig struct {
	StartLevel int `yaml:"start_level"`
}

// RegenInterval returns the board redraw interval.
func (b BossConfig) RegenInterval() time.Duration {
	return seconds(b.RegenSeconds)
}

// TimeCap returns the duel's time limit.
func (b BossConfig) TimeCap() time.Duration {
	return seconds(b.TimeCapSeconds)
}

// ResultDelay returns how long the duel result stays on screen.
func (b BossConfig) ResultDelay() time.Duration {
	return seconds(b.ResultSeconds)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate reports every setting that would break the simulation.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse))
	}
	if c.Physics.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.move_speed must be positive, got %v", c.Physics.MoveSpeed))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Hearts.DropChance < 0 || c.Hearts.DropChance > 1 {
		errs = append(errs, fmt.Errorf("hearts.drop_chance must be in [0,1], got %v", c.Hearts.DropChance))
	}
	if c.Boss.Every <= 0 {
		errs = append(errs, fmt.Errorf("boss.every must be positive, got %d", c.Boss.Every))
	}
	if c.Boss.WinScore <= 0 {
		errs = append(errs, fmt.Errorf("boss.win_score must be positive, got %d", c.Boss.WinScore))
	}
	if c.Boss.RegenSeconds <= 0 || c.Boss.TimeCapSeconds <= 0 {
		errs = append(errs, errors.New("boss.regen_seconds and boss.time_cap_seconds must be positive"))
	}
	if c.Boss.PlayerChance < 0 || c.Boss.BossChance < 0 || c.Boss.PlayerChance+c.Boss.BossChance > 1 {
		errs = append(errs, fmt.Errorf("boss cell chances must be non-negative and sum to at most 1, got %v + %v",
			c.Boss.PlayerChance, c.Boss.BossChance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid platformer config: %w", errors.Join(errs...))
	}
	return nil
}
