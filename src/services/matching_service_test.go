package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshavagr273/ClassMate/src/apperrors"
	"github.com/keshavagr273/ClassMate/src/models"
)

func TestComputeMatchesUnknownUser(t *testing.T) {
	matching := NewSkillMatchingService(newTestDB(t))

	_, err := matching.ComputeMatches(9999)
	var nfe *apperrors.NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestComputeMatchesEmptyLearnSet(t *testing.T) {
	db := newTestDB(t)
	registry := NewSkillRegistryService(db, NewSkillCatalogService(db))
	matching := NewSkillMatchingService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	// Bob teaches, but Alice declared nothing to learn.
	_, err := registry.Declare(bob.ID, "Guitar", models.SkillRoleTeach)
	require.NoError(t, err)

	matches, err := matching.ComputeMatches(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestComputeMatchesSingleMatch(t *testing.T) {
	db := newTestDB(t)
	registry := NewSkillRegistryService(db, NewSkillCatalogService(db))
	matching := NewSkillMatchingService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := registry.Declare(alice.ID, "Guitar", models.SkillRoleLearn)
	require.NoError(t, err)
	_, err = registry.Declare(bob.ID, "Guitar", models.SkillRoleTeach)
	require.NoError(t, err)

	matches, err := matching.ComputeMatches(alice.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, bob.ID, matches[0].Teacher.ID)
	assert.Equal(t, "Guitar", matches[0].SkillName)
	assert.Equal(t, bob.Email, matches[0].Teacher.Email)
}

func TestComputeMatchesNeverIncludesSelf(t *testing.T) {
	db := newTestDB(t)
	registry := NewSkillRegistryService(db, NewSkillCatalogService(db))
	matching := NewSkillMatchingService(db)

	alice := createTestUser(t, db, "alice")

	// Alice both teaches and learns Guitar; she must not match herself.
	_, err := registry.Declare(alice.ID, "Guitar", models.SkillRoleTeach)
	require.NoError(t, err)
	_, err = registry.Declare(alice.ID, "Guitar", models.SkillRoleLearn)
	require.NoError(t, err)

	matches, err := matching.ComputeMatches(alice.ID)
	require.NoError(t, err)
	for _, m := range matches {
		assert.NotEqual(t, alice.ID, m.Teacher.ID)
	}
	assert.Empty(t, matches)
}

func TestComputeMatchesOrderedBySkillThenTeacher(t *testing.T) {
	db := newTestDB(t)
	registry := NewSkillRegistryService(db, NewSkillCatalogService(db))
	matching := NewSkillMatchingService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	// Carol teaches both of Alice's learn skills; Bob teaches one.
	_, err := registry.Declare(carol.ID, "Guitar", models.SkillRoleTeach)
	require.NoError(t, err)
	_, err = registry.Declare(carol.ID, "Piano", models.SkillRoleTeach)
	require.NoError(t, err)
	_, err = registry.Declare(bob.ID, "Guitar", models.SkillRoleTeach)
	require.NoError(t, err)

	_, err = registry.Declare(alice.ID, "Guitar", models.SkillRoleLearn)
	require.NoError(t, err)
	_, err = registry.Declare(alice.ID, "Piano", models.SkillRoleLearn)
	require.NoError(t, err)

	matches, err := matching.ComputeMatches(alice.ID)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Guitar was created before Piano, so its skill id sorts first; within
	// Guitar, Bob's user id sorts before Carol's.
	assert.Equal(t, "Guitar", matches[0].SkillName)
	assert.Equal(t, bob.ID, matches[0].Teacher.ID)
	assert.Equal(t, "Guitar", matches[1].SkillName)
	assert.Equal(t, carol.ID, matches[1].Teacher.ID)
	assert.Equal(t, "Piano", matches[2].SkillName)
	assert.Equal(t, carol.ID, matches[2].Teacher.ID)
}

func TestComputeMatchesOnePerTeacherSkillPair(t *testing.T) {
	db := newTestDB(t)
	registry := NewSkillRegistryService(db, NewSkillCatalogService(db))
	matching := NewSkillMatchingService(db)

	alice := createTestUser(t, db, "alice")
	carol := createTestUser(t, db, "carol")

	_, err := registry.Declare(carol.ID, "Guitar", models.SkillRoleTeach)
	require.NoError(t, err)
	_, err = registry.Declare(carol.ID, "Piano", models.SkillRoleTeach)
	require.NoError(t, err)
	_, err = registry.Declare(alice.ID, "Guitar", models.SkillRoleLearn)
	require.NoError(t, err)
	_, err = registry.Declare(alice.ID, "Piano", models.SkillRoleLearn)
	require.NoError(t, err)

	// No deduplication by teacher: Carol appears once per skill.
	matches, err := matching.ComputeMatches(alice.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, carol.ID, matches[0].Teacher.ID)
	assert.Equal(t, carol.ID, matches[1].Teacher.ID)
	assert.Less(t, matches[0].SkillID, matches[1].SkillID)
}
