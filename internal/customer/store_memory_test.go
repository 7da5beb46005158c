package customer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedCustomers() []Customer {
	return []Customer{
		{ID: "CUST-1", Name: "Ravi Kumar", City: "Mumbai", Phone: "9000000001"},
		{ID: "CUST-2", Name: "Meera Nair", City: "Varanasi", Phone: "9000000002"},
		{ID: "CUST-3", Name: "Arjun Patel", City: "Mumbai", Phone: "9000000003"},
	}
}

func TestFindByIdentityNormalizes(t *testing.T) {
	d := NewInMemoryDirectory(seedCustomers())

	got, err := d.FindByIdentity(context.Background(), "  ravi KUMAR ", "mumbai", "90-0000-0001")
	require.NoError(t, err)
	require.Equal(t, "CUST-1", got.ID)
}

func TestFindByIdentityNoMatch(t *testing.T) {
	d := NewInMemoryDirectory(seedCustomers())

	_, err := d.FindByIdentity(context.Background(), "Ravi Kumar", "Delhi", "9000000001")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindByID(t *testing.T) {
	d := NewInMemoryDirectory(seedCustomers())

	got, err := d.FindByID(context.Background(), "CUST-2")
	require.NoError(t, err)
	require.Equal(t, "Meera Nair", got.Name)

	_, err = d.FindByID(context.Background(), "CUST-99")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCitiesDedupedInDirectoryOrder(t *testing.T) {
	d := NewInMemoryDirectory(seedCustomers())

	cities, err := d.Cities(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Mumbai", "Varanasi"}, cities)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json")
	payload := `[{"id":"CUST-1","name":"Ravi Kumar","city":"Mumbai","phone":"9000000001"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	customers, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "Ravi Kumar", customers[0].Name)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorContains(t, err, "read customer directory")
}
