package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentity(t *testing.T) {
	tests := []struct {
		name  string
		kind  IdentityKind
		value string
		want  string
	}{
		{"office email lowered", KindOfficeEmail, "  Priya@Corp.Example.COM ", "priya@corp.example.com"},
		{"employee id uppered", KindEmployeeID, " emp1234 ", "EMP1234"},
		{"permanent id uppered", KindPermanentID, "perm00123", "PERM00123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdentity(tt.kind, tt.value))
		})
	}
}

func TestValidateIdentityFormat(t *testing.T) {
	tests := []struct {
		name    string
		kind    IdentityKind
		value   string
		wantErr bool
	}{
		{"valid email", KindOfficeEmail, "priya@corp.example.com", false},
		{"email missing domain dot", KindOfficeEmail, "priya@corp", true},
		{"email with spaces", KindOfficeEmail, "pri ya@corp.example.com", true},
		{"valid employee id", KindEmployeeID, "EMP1234", false},
		{"employee id too short", KindEmployeeID, "E1", true},
		{"employee id too long", KindEmployeeID, "EMP12345678", true},
		{"employee id lowercase", KindEmployeeID, "emp1234", true},
		{"valid permanent id", KindPermanentID, "PERM00123", false},
		{"permanent id too short", KindPermanentID, "PER", true},
		{"permanent id too long", KindPermanentID, "PERM123456789", true},
		{"unknown kind", IdentityKind("badge"), "X123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentityFormat(tt.kind, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignIdentity(t *testing.T) {
	t.Run("assigns normalized office email", func(t *testing.T) {
		c := newTestCandidate(t)
		require.NoError(t, c.SendToOps(testActor("HR Tagger")))
		actor := testActor("HR Ops")

		err := c.AssignIdentity(KindOfficeEmail, " Priya@Corp.Example.COM ", actor)
		require.NoError(t, err)
		assert.Equal(t, "priya@corp.example.com", c.OfficeEmail.Value)
		assert.Equal(t, actor.Name, c.OfficeEmail.AssignedByName)
		assert.NotNil(t, c.OfficeEmail.AssignedAt)

		events := c.GetDomainEvents()
		require.NotEmpty(t, events)
		assert.Equal(t, EventIdentityAssigned, events[len(events)-1].EventType())
	})

	t.Run("fails for submitted candidate", func(t *testing.T) {
		c := newTestCandidate(t)
		err := c.AssignIdentity(KindEmployeeID, "EMP1234", testActor("HR Ops"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in a state eligible")
	})

	t.Run("allows assignment to rejected candidate", func(t *testing.T) {
		c := newTestCandidate(t)
		require.NoError(t, c.UpdateLDDecision(LDRejected, "Low Score", testActor("L&D Lead")))

		err := c.AssignIdentity(KindEmployeeID, "EMP1234", testActor("HR Ops"))
		require.NoError(t, err)
		assert.Equal(t, "EMP1234", c.EmployeeID.Value)
	})

	t.Run("permanent ID needs the ops routing stamp", func(t *testing.T) {
		c := newTestCandidate(t)
		require.NoError(t, c.SendToOps(testActor("HR Tagger")))

		err := c.AssignIdentity(KindPermanentID, "PERM00123", testActor("HR Ops"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permanent ID")

		require.NoError(t, c.UpdateLDDecision(LDSelected, "", testActor("L&D Lead")))
		require.NoError(t, c.MarkDeployedToHRTag(testActor("Delivery Lead")))
		require.NoError(t, c.RouteToOpsForPermanentID(testActor("HR Tagger")))

		err = c.AssignIdentity(KindPermanentID, "perm00123", testActor("HR Ops"))
		require.NoError(t, err)
		assert.Equal(t, "PERM00123", c.PermanentID.Value)
	})

	t.Run("rejects malformed value before eligibility", func(t *testing.T) {
		c := newTestCandidate(t)
		err := c.AssignIdentity(KindOfficeEmail, "not-an-email", testActor("HR Ops"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid office email format")
	})
}

func TestIdentityValue(t *testing.T) {
	c := newTestCandidate(t)
	require.NoError(t, c.SendToOps(testActor("HR Tagger")))
	require.NoError(t, c.AssignIdentity(KindOfficeEmail, "priya@corp.example.com", testActor("HR Ops")))

	assert.Equal(t, "priya@corp.example.com", c.IdentityValue(KindOfficeEmail))
	assert.Empty(t, c.IdentityValue(KindEmployeeID))
	assert.Empty(t, c.IdentityValue(IdentityKind("badge")))
}
