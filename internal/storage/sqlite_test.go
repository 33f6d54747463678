package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestBlobRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// Missing key reports absence, not an error
	if _, ok, err := store.Load("overlay/classic"); err != nil || ok {
		t.Fatalf("Load() on missing key = (ok=%v, err=%v), want (false, nil)", ok, err)
	}

	if err := store.Save("overlay/classic", `{"0,0": null}`); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	value, ok, err := store.Load("overlay/classic")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !ok || value != `{"0,0": null}` {
		t.Errorf("Load() = (%q, %v), want saved blob", value, ok)
	}

	// Save replaces, it does not append
	if err := store.Save("overlay/classic", `{"0,0": 4}`); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	value, _, err = store.Load("overlay/classic")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if value != `{"0,0": 4}` {
		t.Errorf("Load() after overwrite = %q", value)
	}

	// Keys are independent
	if _, ok, _ := store.Load("overlay/dense"); ok {
		t.Error("unrelated key has a value")
	}
}

func TestDeleteBlob(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("overlay/classic", "{}"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.DeleteBlob("overlay/classic"); err != nil {
		t.Fatalf("DeleteBlob() failed: %v", err)
	}
	if _, ok, _ := store.Load("overlay/classic"); ok {
		t.Error("blob still present after delete")
	}

	// Deleting a missing blob is not an error
	if err := store.DeleteBlob("overlay/classic"); err != nil {
		t.Errorf("DeleteBlob() on missing key failed: %v", err)
	}
}

func TestRecordAndListWins(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordWin("classic", 256, 31, 95*time.Second); err != nil {
		t.Fatalf("RecordWin() failed: %v", err)
	}
	if _, err := store.RecordWin("classic", 256, 28, 60*time.Second); err != nil {
		t.Fatalf("RecordWin() failed: %v", err)
	}
	if _, err := store.RecordWin("classic", 512, 40, 200*time.Second); err != nil {
		t.Fatalf("RecordWin() failed: %v", err)
	}
	if _, err := store.RecordWin("marathon", 1024, 80, 500*time.Second); err != nil {
		t.Fatalf("RecordWin() failed: %v", err)
	}

	wins, err := store.TopWins("classic", 10)
	if err != nil {
		t.Fatalf("TopWins() failed: %v", err)
	}
	if len(wins) != 3 {
		t.Fatalf("expected 3 classic wins, got %d", len(wins))
	}

	// Fastest first
	if wins[0].Duration != 60 {
		t.Errorf("fastest win duration = %d, want 60", wins[0].Duration)
	}
	if wins[1].Duration != 95 || wins[2].Duration != 200 {
		t.Errorf("wins not ordered by duration: %d, %d", wins[1].Duration, wins[2].Duration)
	}

	count, err := store.WinCount("marathon")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("WinCount(marathon) = %d, want 1", count)
	}

	count, err = store.WinCount("scarce")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("WinCount(scarce) = %d, want 0", count)
	}
}
