package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dialpool/internal/shared/authorization"
	"dialpool/internal/shared/biztime"
)

const (
	adminSubject = "admin"
	issuer       = "dialpool"
)

// Claims carry the role plus the agent ID in Subject. Admin tokens use the
// fixed subject "admin".
type Claims struct {
	Role authorization.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal turns verified claims into the boundary principal.
func (c *Claims) Principal() (authorization.Principal, error) {
	switch c.Role {
	case authorization.RoleAdmin:
		if c.Subject != adminSubject {
			return authorization.Principal{}, fmt.Errorf("admin token with subject %q", c.Subject)
		}
		return authorization.AdminPrincipal(), nil
	case authorization.RoleAgent:
		id, err := strconv.ParseUint(c.Subject, 10, 64)
		if err != nil || id == 0 {
			return authorization.Principal{}, fmt.Errorf("agent token with subject %q", c.Subject)
		}
		return authorization.AgentPrincipal(uint(id)), nil
	default:
		return authorization.Principal{}, fmt.Errorf("unknown role %q", c.Role)
	}
}

type AccessToken struct {
	Token     string `json:"access_token"`
	ExpiresIn int64  `json:"expires_in"`
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

func (s *JWTService) Generate(p authorization.Principal) (*AccessToken, error) {
	subject := adminSubject
	if agentID, ok := p.AgentID(); ok {
		subject = strconv.FormatUint(uint64(agentID), 10)
	} else if !p.IsAdmin() {
		return nil, fmt.Errorf("cannot issue a token for an empty principal")
	}

	now := biztime.NowUTC()
	claims := &Claims{
		Role: p.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &AccessToken{
		Token:     signed,
		ExpiresIn: int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
