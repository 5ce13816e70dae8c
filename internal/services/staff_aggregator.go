package services

import (
	"math"
	"sort"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// Order statuses that count as completed work for staff scoring.
const (
	orderStatusCompleted = "completed"
	orderStatusServed    = "served"
)

type staffStats struct {
	member          models.StaffMember
	ordersHandled   int
	ordersCompleted int
	tablesServed    int
	totalValue      float64
}

type roleBucket struct {
	role  string
	count int
}

// aggregateStaff builds the staff report from the active staff roster and
// the orders of the trailing 30 days. Every staff member gets an
// accumulator even with zero activity so quiet staff still appear.
func aggregateStaff(staff []models.StaffMember, recentOrders []models.Order) *models.StaffReport {
	report := &models.StaffReport{
		StaffByRole:   []models.RoleCount{},
		TopPerformers: []models.TopPerformer{},
	}

	stats := make([]*staffStats, 0, len(staff))
	byID := make(map[int64]*staffStats, len(staff))
	for _, member := range staff {
		s := &staffStats{member: member}
		stats = append(stats, s)
		byID[member.ID] = s
	}

	for _, order := range recentOrders {
		if order.StaffID == nil {
			continue
		}
		s, ok := byID[*order.StaffID]
		if !ok {
			// Assignee no longer on the roster; skip the order entirely.
			continue
		}
		s.ordersHandled++
		if order.Status == orderStatusCompleted || order.Status == orderStatusServed {
			s.ordersCompleted++
		}
		if order.TableID != nil {
			s.tablesServed++
		}
		for _, line := range order.Items {
			s.totalValue += line.UnitPrice * float64(line.Quantity)
		}
	}

	report.TotalStaff = len(staff)

	roles := newKeyedAccumulator[roleBucket]()
	for _, member := range staff {
		role := staffRole(member)
		bucket := roles.bucket(role)
		bucket.role = role
		bucket.count++
	}
	grouped := roles.collect()
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].count > grouped[j].count
	})
	for _, bucket := range grouped {
		report.StaffByRole = append(report.StaffByRole, models.RoleCount{
			Role:  bucket.role,
			Count: bucket.count,
		})
	}

	performers := make([]models.TopPerformer, 0, len(stats))
	for _, s := range stats {
		performer := models.TopPerformer{
			StaffID:     s.member.ID,
			Name:        s.member.Name,
			Role:        staffRole(s.member),
			Performance: performanceScore(s.ordersHandled, s.ordersCompleted),
		}
		switch performer.Role {
		case models.RoleWaiter:
			tables := s.tablesServed
			performer.TablesServed = &tables
		case models.RoleChef:
			handled := s.ordersHandled
			performer.OrdersHandled = &handled
		}
		performers = append(performers, performer)
	}
	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].Performance > performers[j].Performance
	})
	report.TopPerformers = capList(performers, 5)

	return report
}

// performanceScore maps completion rate onto a 70-95 scale. Staff with no
// handled orders get the neutral floor of 70.
func performanceScore(handled, completed int) int {
	if handled == 0 {
		return 70
	}
	return int(math.Round(70 + 25*float64(completed)/float64(handled)))
}

func staffRole(member models.StaffMember) string {
	if member.Role != nil && *member.Role != "" {
		return *member.Role
	}
	return "other"
}
