package config

import "github.com/automoto/pawprint/shared/gameconfig"

// Type aliases so client code can say config.RecoveryPolicy.
type RecoveryPolicy = gameconfig.RecoveryPolicy

const (
	RecoveryRespawn      = gameconfig.RecoveryRespawn
	RecoverySnapToGround = gameconfig.RecoverySnapToGround
)
