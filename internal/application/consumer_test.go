package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
)

func newConsumers(t *testing.T) *ConsumerService {
	t.Helper()
	m := seedMasters()
	account := func(id int, number, ward, property, partition, name string, active bool) domain.ConsumerAccount {
		c := domain.ConsumerAccount{
			ConsumerID:       id,
			ConsumerNumber:   number,
			WardNo:           ptr(ward),
			PropertyNumber:   ptr(property),
			ConsumerName:     name,
			IsActive:         ptr(active),
			ConnectionTypeID: 1,
			CategoryID:       1,
			PipeSizeID:       1,
		}
		if partition != "" {
			c.PartitionNumber = ptr(partition)
		}
		return c
	}

	meena := account(4, "C-004", "3", "P1", "", "Meena Joshi", true)
	meena.EmailID = ptr("meena@example.org")
	meena.ConnectionTypeID = 9

	ravi := account(2, "WT1002", "12", "P7", "F2", "Ravi Kulkarni", true)
	ravi.MobileNumber = ptr("9876500002")

	repo := newMemRepo(m.uow, func(c *domain.ConsumerAccount) int { return c.ConsumerID }, nil,
		meena,
		account(3, "WT1003", "12", "P8", "", "Asha Patil", false),
		ravi,
		account(1, "WT1001", "12", "P7", "F1", "Asha Patil", true),
	)
	return NewConsumerService(repo, ConsumerReferences{
		ConnectionTypes:      m.types,
		ConnectionCategories: m.categories,
		PipeSizes:            m.pipeSizes,
	}, testRuntime())
}

func TestConsumerListDefaultsToActive(t *testing.T) {
	ctx := context.Background()
	svc := newConsumers(t)

	page, err := svc.GetAll(ctx, ConsumerQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, 1, page.Items[0].ConsumerID)
	assert.Equal(t, 2, page.Items[1].ConsumerID)
	assert.Equal(t, 4, page.Items[2].ConsumerID)
	assert.Equal(t, "Domestic", *page.Items[0].ConnectionTypeName)
	assert.Equal(t, "15 mm", *page.Items[0].PipeSize)

	inactive, err := svc.GetAll(ctx, ConsumerQuery{IsActive: ptr(false)})
	require.NoError(t, err)
	require.Len(t, inactive.Items, 1)
	assert.Equal(t, 3, inactive.Items[0].ConsumerID)
}

func TestFindConsumer(t *testing.T) {
	ctx := context.Background()
	svc := newConsumers(t)

	cases := []struct {
		name  string
		value string
		want  int // 0 means no match
	}{
		{"blank", "   ", 0},
		{"full pattern", "12-P7-F2", 2},
		{"pattern lowest id wins", "12 - P7", 1},
		{"pattern miss falls back to direct fields", "c-004", 4},
		{"name skips inactive", "asha patil", 1},
		{"mobile", "9876500002", 2},
		{"email ignores case", "MEENA@example.org", 4},
		{"numeric id", "2", 2},
		{"inactive id", "3", 0},
		{"unknown", "nobody", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.FindConsumer(ctx, tc.value)
			require.NoError(t, err)
			if tc.want == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.ConsumerID)
		})
	}
}

func TestFindConsumerEnrichesMissingReferences(t *testing.T) {
	svc := newConsumers(t)

	got, err := svc.FindConsumer(context.Background(), "meena@example.org")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.ConnectionTypeName)
	require.NotNil(t, got.CategoryName)
	assert.Equal(t, "General", *got.CategoryName)
}

func TestConsumerGetByID(t *testing.T) {
	svc := newConsumers(t)

	got, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "WT1003", got.ConsumerNumber)

	missing, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
