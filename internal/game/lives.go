package game

import (
	"github.com/vovakirdan/quizrun/internal/config"
	"github.com/vovakirdan/quizrun/internal/core"
)

// LivesController tracks remaining lives plus the protective states that
// can absorb or prevent damage. Invincibility and the shield are tick
// deadlines, so paused frames (which do not advance the session tick)
// do not consume them.
type LivesController struct {
	cfg config.LivesConfig

	lives    int
	maxLives int

	invincibleUntil int // tick deadline, 0 when inactive
	shieldUntil     int

	invincibilityTicks int
	shieldTicks        int

	consecutiveCorrect int
	recoveriesUsed     int
}

// NewLivesController creates a lives controller for one session.
func NewLivesController(cfg config.LivesConfig, tickRate int) *LivesController {
	c := &LivesController{cfg: cfg}
	c.invincibilityTicks = core.TicksFor(cfg.InvincibilityMs, tickRate)
	c.shieldTicks = core.TicksFor(cfg.ShieldMs, tickRate)
	c.Reset()
	return c
}

// Reset restores the initial lives and clears all protective state.
func (c *LivesController) Reset() {
	c.lives = c.cfg.Initial
	c.maxLives = c.cfg.Max
	c.invincibleUntil = 0
	c.shieldUntil = 0
	c.consecutiveCorrect = 0
	c.recoveriesUsed = 0
}

// TakeDamage applies damage at the given tick and reports whether a life
// was actually lost. Invincibility ignores the hit entirely; an active
// shield absorbs it and is consumed. A real hit resets the recovery
// counter and grants a short invincibility window while lives remain.
func (c *LivesController) TakeDamage(amount, now int) bool {
	if c.Invincible(now) {
		return false
	}
	if c.HasShield(now) {
		c.shieldUntil = 0
		return false
	}

	c.lives -= amount
	if c.lives < 0 {
		c.lives = 0
	}
	c.consecutiveCorrect = 0

	if c.lives > 0 {
		c.invincibleUntil = now + c.invincibilityTicks
	}
	return true
}

// AddCorrectAnswer advances the recovery counter and reports whether a
// life was recovered. Recovery triggers once the counter reaches the
// threshold, at most MaxRecoveries times per session, and only below
// the life cap.
func (c *LivesController) AddCorrectAnswer() bool {
	c.consecutiveCorrect++
	if c.consecutiveCorrect >= c.cfg.RecoveryThreshold &&
		c.recoveriesUsed < c.cfg.MaxRecoveries &&
		c.lives < c.maxLives {
		c.lives++
		c.consecutiveCorrect = 0
		c.recoveriesUsed++
		return true
	}
	return false
}

// ActivateShield arms the one-hit shield. Re-activating restarts the timer.
func (c *LivesController) ActivateShield(now int) {
	c.shieldUntil = now + c.shieldTicks
}

// AddExtraLife heals one life, raising the cap when already at it.
func (c *LivesController) AddExtraLife() {
	if c.lives >= c.maxLives {
		c.maxLives++
	}
	c.lives++
}

// Heal restores up to amount lives without exceeding the cap.
func (c *LivesController) Heal(amount int) {
	c.lives += amount
	if c.lives > c.maxLives {
		c.lives = c.maxLives
	}
}

// Invincible reports whether the post-hit grace window is active.
func (c *LivesController) Invincible(now int) bool {
	return c.invincibleUntil > now
}

// HasShield reports whether the shield is armed.
func (c *LivesController) HasShield(now int) bool {
	return c.shieldUntil > now
}

// Lives returns the current life count.
func (c *LivesController) Lives() int { return c.lives }

// MaxLives returns the current life cap.
func (c *LivesController) MaxLives() int { return c.maxLives }

// Dead reports whether no lives remain.
func (c *LivesController) Dead() bool { return c.lives <= 0 }

// ConsecutiveCorrect returns the progress toward the next life recovery.
func (c *LivesController) ConsecutiveCorrect() int { return c.consecutiveCorrect }
