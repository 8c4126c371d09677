package repository

import (
	"testing"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/testutil"
)

func seedUser(t *testing.T, users *UserRepository, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		PasswordHash: "x",
		Role:         models.RoleUser,
	}
	if err := users.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestTokenRepository_SaveAndFind(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "token_repo_save")
	tokens := NewTokenRepository(db)
	users := NewUserRepository(db)
	u := seedUser(t, users, "alice")

	tok := &models.Token{Token: "tok-1", UserID: u.ID}
	if err := tokens.Save(tok); err != nil {
		t.Fatalf("save token: %v", err)
	}

	got, err := tokens.FindByToken("tok-1")
	if err != nil {
		t.Fatalf("find token: %v", err)
	}
	if got == nil || got.UserID != u.ID || got.Revoked {
		t.Errorf("FindByToken = %+v, want unrevoked token of user %d", got, u.ID)
	}

	missing, err := tokens.FindByToken("no-such-token")
	if err != nil {
		t.Fatalf("find missing token: %v", err)
	}
	if missing != nil {
		t.Errorf("FindByToken(missing) = %+v, want nil", missing)
	}
}

func TestTokenRepository_UniqueTokenString(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "token_repo_unique")
	tokens := NewTokenRepository(db)
	users := NewUserRepository(db)
	u := seedUser(t, users, "alice")

	if err := tokens.Save(&models.Token{Token: "dup", UserID: u.ID}); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := tokens.Save(&models.Token{Token: "dup", UserID: u.ID}); err == nil {
		t.Error("duplicate token string was accepted")
	}
}

func TestTokenRepository_SaveAllRevocation(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "token_repo_saveall")
	tokens := NewTokenRepository(db)
	users := NewUserRepository(db)
	u := seedUser(t, users, "alice")
	other := seedUser(t, users, "bob")

	for _, s := range []string{"a-1", "a-2", "a-3"} {
		if err := tokens.Save(&models.Token{Token: s, UserID: u.ID}); err != nil {
			t.Fatalf("save token %s: %v", s, err)
		}
	}
	if err := tokens.Save(&models.Token{Token: "b-1", UserID: other.ID}); err != nil {
		t.Fatalf("save token b-1: %v", err)
	}

	owned, err := tokens.FindAllByUser(u.ID)
	if err != nil {
		t.Fatalf("find all by user: %v", err)
	}
	if len(owned) != 3 {
		t.Fatalf("user owns %d tokens, want 3", len(owned))
	}

	for i := range owned {
		owned[i].Revoked = true
	}
	if err := tokens.SaveAll(owned); err != nil {
		t.Fatalf("save all: %v", err)
	}

	owned, err = tokens.FindAllByUser(u.ID)
	if err != nil {
		t.Fatalf("find all by user: %v", err)
	}
	for _, tok := range owned {
		if !tok.Revoked {
			t.Errorf("token %s still unrevoked after batch save", tok.Token)
		}
	}

	// other users' tokens are untouched
	bTok, err := tokens.FindByToken("b-1")
	if err != nil || bTok == nil {
		t.Fatalf("find b-1: %v", err)
	}
	if bTok.Revoked {
		t.Error("unrelated user's token was revoked")
	}
}

func TestTokenRepository_SaveAllEmpty(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "token_repo_empty")
	tokens := NewTokenRepository(db)

	if err := tokens.SaveAll(nil); err != nil {
		t.Errorf("SaveAll(nil) error = %v, want nil", err)
	}
}

func TestUserRepository_Lookup(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_repo_lookup")
	users := NewUserRepository(db)
	u := seedUser(t, users, "alice")

	got, err := users.FindByUsername("alice")
	if err != nil || got == nil || got.ID != u.ID {
		t.Errorf("FindByUsername = %+v, %v; want user %d", got, err, u.ID)
	}

	none, err := users.FindByUsername("nobody")
	if err != nil || none != nil {
		t.Errorf("FindByUsername(missing) = %+v, %v; want nil, nil", none, err)
	}

	exists, err := users.ExistsByUsername("alice")
	if err != nil || !exists {
		t.Errorf("ExistsByUsername(alice) = %v, %v; want true, nil", exists, err)
	}
	exists, err = users.ExistsByUsername("nobody")
	if err != nil || exists {
		t.Errorf("ExistsByUsername(nobody) = %v, %v; want false, nil", exists, err)
	}
}
