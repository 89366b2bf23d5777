package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	manager := TokenManager{Secret: []byte("secret"), Issuer: "campuseats-test"}
	subject := uuid.New()

	token, ttl, err := manager.Issue(subject, KindRestaurant)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if ttl != 7*24*time.Hour {
		t.Fatalf("expected default 7-day ttl, got %v", ttl)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Kind != KindRestaurant {
		t.Fatalf("expected restaurant kind, got %q", claims.Kind)
	}
	id, err := claims.AccountID()
	if err != nil || id != subject {
		t.Fatalf("subject mismatch: %v %v", id, err)
	}
}

func TestUserTokensCarryNoKindClaim(t *testing.T) {
	manager := TokenManager{Secret: []byte("secret")}

	token, _, err := manager.Issue(uuid.New(), KindUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Kind != "" {
		t.Fatalf("end-user token must have empty kind, got %q", claims.Kind)
	}
}

func TestParseRejectsForeignAndExpiredTokens(t *testing.T) {
	manager := TokenManager{Secret: []byte("secret")}
	other := TokenManager{Secret: []byte("other-secret")}

	token, _, err := other.Issue(uuid.New(), KindAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := manager.Parse(token); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}

	expired := TokenManager{Secret: []byte("secret"), TTL: -time.Minute}
	token, _, err = expired.Issue(uuid.New(), KindAdmin)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	if _, err := manager.Parse(token); err == nil {
		t.Fatal("expired token must not parse")
	}
}
