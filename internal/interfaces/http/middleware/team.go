package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TeamGuardConfig holds configuration for the team guard middleware
type TeamGuardConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when access is denied (optional)
	OnDenied func(c *gin.Context, allowedTeams []string)
}

// RequireTeam creates middleware that only lets members of the given
// teams through. Admin always passes: the original console gives Admin
// read access to every view.
func RequireTeam(teams ...string) gin.HandlerFunc {
	return RequireTeamWithConfig(TeamGuardConfig{}, teams...)
}

// RequireTeamWithConfig creates the team guard with custom config
func RequireTeamWithConfig(cfg TeamGuardConfig, teams ...string) gin.HandlerFunc {
	allowed := append([]string{"Admin"}, teams...)

	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			handleTeamDenied(c, cfg, allowed, "No authentication claims found")
			return
		}

		if !claims.IsAnyTeam(allowed...) {
			handleTeamDenied(c, cfg, allowed, "Employee is not on an allowed team")
			return
		}

		if cfg.Logger != nil {
			cfg.Logger.Debug("Team check passed",
				zap.String("employee_id", claims.EmployeeID),
				zap.String("team", claims.Team),
				zap.Strings("allowed_teams", allowed),
			)
		}

		c.Next()
	}
}

func handleTeamDenied(c *gin.Context, cfg TeamGuardConfig, allowed []string, reason string) {
	if cfg.Logger != nil {
		claims := GetJWTClaims(c)
		team := ""
		if claims != nil {
			team = claims.Team
		}
		cfg.Logger.Warn("Team access denied",
			zap.String("reason", reason),
			zap.String("team", team),
			zap.Strings("allowed_teams", allowed),
			zap.String("path", c.Request.URL.Path),
		)
	}

	if cfg.OnDenied != nil {
		cfg.OnDenied(c, allowed)
		return
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "FORBIDDEN",
			"message": "Your team does not have access to this resource",
		},
	})
}
