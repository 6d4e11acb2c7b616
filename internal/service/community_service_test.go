package service

import (
	"fmt"
	"testing"

	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommunity_SeedsAdminMembership(t *testing.T) {
	db := newTestDB(t)
	ann := seedUser(t, db, "Ann", "ann@x.com")
	svc := NewCommunityService(db, nil)

	community, err := svc.CreateCommunity(ann.ID, "Go Devs")
	require.NoError(t, err)
	assert.Equal(t, "go-devs", community.Slug)
	assert.Equal(t, ann.ID, community.Owner)

	members, err := (&mysql.MemberRepository{DB: db}).ListByCommunity(community.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, ann.ID, members[0].User)
	require.NotNil(t, members[0].RoleRef)
	assert.Equal(t, model.RoleNameAdmin, members[0].RoleRef.Name)
	assert.Equal(t, model.RoleKindAdmin, members[0].RoleRef.Kind)
}

func TestCreateCommunity_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	ann := seedUser(t, db, "Ann", "ann@x.com")
	svc := NewCommunityService(db, nil)

	_, err := svc.CreateCommunity(ann.ID, "Go Devs")
	require.NoError(t, err)

	// same derived slug, different casing
	_, err = svc.CreateCommunity(ann.ID, "GO DEVS")
	var apiErr *pkg.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, pkg.CodeResourceExists, apiErr.Code)
}

func TestCreateCommunity_ExtraWhitespaceMakesDistinctSlug(t *testing.T) {
	db := newTestDB(t)
	ann := seedUser(t, db, "Ann", "ann@x.com")
	svc := NewCommunityService(db, nil)

	_, err := svc.CreateCommunity(ann.ID, "Go Devs")
	require.NoError(t, err)

	// a second internal space survives the single-replace derivation
	c, err := svc.CreateCommunity(ann.ID, "Go  Devs")
	require.NoError(t, err)
	assert.Equal(t, "go- devs", c.Slug)
}

func TestListCommunities_Pagination(t *testing.T) {
	db := newTestDB(t)
	ann := seedUser(t, db, "Ann", "ann@x.com")
	svc := NewCommunityService(db, nil)

	for i := 0; i < 51; i++ {
		_, err := svc.CreateCommunity(ann.ID, fmt.Sprintf("Community %02d", i))
		require.NoError(t, err)
	}

	list, meta, err := svc.ListCommunities(2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(51), meta.Total)
	assert.Equal(t, 2, meta.Pages)
	assert.Equal(t, 2, meta.Page)

	first, meta, err := svc.ListCommunities(0)
	require.NoError(t, err)
	assert.Len(t, first, 50)
	assert.Equal(t, 1, meta.Page, "bad page parameter falls back to 1")

	// owner is embedded as an {id, name} summary
	require.NotEmpty(t, first)
	assert.Equal(t, OwnerSummary{ID: ann.ID, Name: "Ann"}, first[0].Owner)
}

func TestListCommunityMembers(t *testing.T) {
	db := newTestDB(t)
	ann := seedUser(t, db, "Ann", "ann@x.com")
	svc := NewCommunityService(db, nil)
	memberSvc := NewMemberService(db, nil)

	community, err := svc.CreateCommunity(ann.ID, "Go Devs")
	require.NoError(t, err)

	bob := seedUser(t, db, "Bob", "bob@x.com")
	_, err = memberSvc.AddMember(ann.ID, community.ID, bob.ID, "")
	require.NoError(t, err)

	views, meta, err := svc.ListCommunityMembers(community.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), meta.Total)
	assert.Equal(t, 1, meta.Pages)
	require.Len(t, views, 2)

	byUser := map[string]CommunityMemberView{}
	for _, v := range views {
		assert.Equal(t, community.ID, v.Community)
		byUser[v.User.ID] = v
	}
	assert.Equal(t, model.RoleNameAdmin, byUser[ann.ID].Role.Name)
	assert.Equal(t, model.RoleNameMember, byUser[bob.ID].Role.Name)
}

func TestListCommunityMembers_UnknownCommunity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db, nil)

	_, _, err := svc.ListCommunityMembers("no-such-id", 1)
	var apiErr *pkg.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, pkg.CodeResourceNotFound, apiErr.Code)
}

func TestListOwnedAndJoined(t *testing.T) {
	db := newTestDB(t)
	ann := seedUser(t, db, "Ann", "ann@x.com")
	bob := seedUser(t, db, "Bob", "bob@x.com")
	svc := NewCommunityService(db, nil)
	memberSvc := NewMemberService(db, nil)

	community, err := svc.CreateCommunity(ann.ID, "Go Devs")
	require.NoError(t, err)
	_, err = svc.CreateCommunity(bob.ID, "Rustaceans")
	require.NoError(t, err)

	_, err = memberSvc.AddMember(ann.ID, community.ID, bob.ID, "")
	require.NoError(t, err)

	owned, meta, err := svc.ListOwned(ann.ID, 1)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "go-devs", owned[0].Slug)
	assert.Equal(t, int64(1), meta.Total)

	// bob owns one community and was added to ann's
	joined, meta, err := svc.ListJoined(bob.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), meta.Total)
	require.Len(t, joined, 2)

	slugs := map[string]OwnerSummary{}
	for _, j := range joined {
		slugs[j.Slug] = j.Owner
	}
	assert.Equal(t, OwnerSummary{ID: ann.ID, Name: "Ann"}, slugs["go-devs"])
	assert.Equal(t, OwnerSummary{ID: bob.ID, Name: "Bob"}, slugs["rustaceans"])
}
