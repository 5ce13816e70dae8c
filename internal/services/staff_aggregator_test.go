package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

func rolePtr(role string) *string { return &role }

func staffOrder(staffID int64, status string, tableID *int64) models.Order {
	return models.Order{StaffID: &staffID, Status: status, TableID: tableID}
}

func TestAggregateStaff(t *testing.T) {
	waiter := rolePtr(models.RoleWaiter)
	chef := rolePtr(models.RoleChef)
	manager := rolePtr(models.RoleManager)

	t.Run("performance score from completion rate", func(t *testing.T) {
		table := int64(3)
		staff := []models.StaffMember{
			{ID: 1, Name: "Alice", Role: waiter},
			{ID: 2, Name: "Bob", Role: chef},
		}
		orders := []models.Order{
			staffOrder(1, "completed", &table),
			staffOrder(1, "served", &table),
			staffOrder(1, "completed", nil),
			staffOrder(1, "pending", &table),
		}

		report := aggregateStaff(staff, orders)

		require.Len(t, report.TopPerformers, 2)
		// 3 of 4 completed: round(70 + 25*0.75) = 89.
		alice := report.TopPerformers[0]
		assert.Equal(t, int64(1), alice.StaffID)
		assert.Equal(t, 89, alice.Performance)
		require.NotNil(t, alice.TablesServed)
		assert.Equal(t, 3, *alice.TablesServed)
		assert.Nil(t, alice.OrdersHandled)

		// No activity keeps the neutral floor.
		bob := report.TopPerformers[1]
		assert.Equal(t, 70, bob.Performance)
		require.NotNil(t, bob.OrdersHandled)
		assert.Equal(t, 0, *bob.OrdersHandled)
		assert.Nil(t, bob.TablesServed)
	})

	t.Run("orders for unknown staff are skipped", func(t *testing.T) {
		staff := []models.StaffMember{{ID: 1, Name: "Alice", Role: waiter}}
		orders := []models.Order{
			staffOrder(99, "completed", nil),
			{Status: "completed"},
		}

		report := aggregateStaff(staff, orders)

		require.Len(t, report.TopPerformers, 1)
		assert.Equal(t, 70, report.TopPerformers[0].Performance)
	})

	t.Run("roles counted and sorted by headcount", func(t *testing.T) {
		staff := []models.StaffMember{
			{ID: 1, Name: "Alice", Role: waiter},
			{ID: 2, Name: "Bob", Role: waiter},
			{ID: 3, Name: "Carol", Role: chef},
			{ID: 4, Name: "Dan", Role: manager},
			{ID: 5, Name: "Eve"},
		}

		report := aggregateStaff(staff, nil)

		assert.Equal(t, 5, report.TotalStaff)
		require.Len(t, report.StaffByRole, 4)
		assert.Equal(t, models.RoleCount{Role: models.RoleWaiter, Count: 2}, report.StaffByRole[0])

		roles := make(map[string]int)
		for _, rc := range report.StaffByRole {
			roles[rc.Role] = rc.Count
		}
		assert.Equal(t, 1, roles["other"])
	})

	t.Run("top performers capped at five", func(t *testing.T) {
		staff := make([]models.StaffMember, 0, 7)
		for i := int64(1); i <= 7; i++ {
			staff = append(staff, models.StaffMember{ID: i, Name: "Staff", Role: waiter})
		}

		report := aggregateStaff(staff, nil)

		assert.Len(t, report.TopPerformers, 5)
	})

	t.Run("empty roster yields a zeroed report", func(t *testing.T) {
		report := aggregateStaff(nil, nil)

		assert.Equal(t, 0, report.TotalStaff)
		assert.Empty(t, report.StaffByRole)
		assert.Empty(t, report.TopPerformers)
	})
}

func TestPerformanceScore(t *testing.T) {
	assert.Equal(t, 70, performanceScore(0, 0))
	assert.Equal(t, 95, performanceScore(4, 4))
	assert.Equal(t, 89, performanceScore(4, 3))
	assert.Equal(t, 70, performanceScore(5, 0))
}
