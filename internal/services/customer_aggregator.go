package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// guestIdentity is the synthetic customer every anonymous bill collapses
// into.
const guestIdentity = "Guest"

type itemTally struct {
	name  string
	count int
}

type hourTally struct {
	hour  int
	count int
}

type customerStats struct {
	name      string
	visits    int
	spent     float64
	lastVisit time.Time
	isNew     bool
	items     *keyedAccumulator[itemTally]
	hours     *keyedAccumulator[hourTally]
}

// aggregateCustomers builds the customer report from the bills of the
// requested window. previousBills covers the immediately preceding period
// of equal length and is used only to decide new-vs-repeat.
func aggregateCustomers(bills, previousBills []models.Bill) *models.CustomerReport {
	report := &models.CustomerReport{
		TopCustomers: []models.TopCustomer{},
	}

	previous := make(map[string]struct{})
	for _, bill := range previousBills {
		previous[customerIdentity(bill)] = struct{}{}
	}

	customers := newKeyedAccumulator[customerStats]()
	for _, bill := range bills {
		identity := customerIdentity(bill)

		firstEncounter := !customers.has(identity)
		customer := customers.bucket(identity)
		if firstEncounter {
			customer.name = identity
			customer.items = newKeyedAccumulator[itemTally]()
			customer.hours = newKeyedAccumulator[hourTally]()
			_, seenBefore := previous[identity]
			customer.isNew = !seenBefore
		}

		customer.visits++
		customer.spent += bill.Total
		if bill.CreatedAt.After(customer.lastVisit) {
			customer.lastVisit = bill.CreatedAt
		}

		hour := bill.CreatedAt.Hour()
		hb := customer.hours.bucket(hourKey(hour))
		hb.hour = hour
		hb.count++

		if bill.Order != nil {
			for _, line := range bill.Order.Items {
				name := lineItemName(line)
				tally := customer.items.bucket(name)
				tally.name = name
				tally.count += line.Quantity
			}
		}
	}

	all := customers.collect()
	report.TotalCustomers = len(all)
	for _, customer := range all {
		if customer.isNew {
			report.NewCustomers++
		}
		if customer.visits > 1 {
			report.RepeatCustomers++
		}
	}

	ranked := make([]*customerStats, len(all))
	copy(ranked, all)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].spent > ranked[j].spent
	})
	for _, customer := range capList(ranked, 10) {
		report.TopCustomers = append(report.TopCustomers, models.TopCustomer{
			Name:          customer.name,
			Visits:        customer.visits,
			TotalSpent:    customer.spent,
			LastVisit:     customer.lastVisit.Format(time.RFC3339),
			FavoriteItem:  favoriteItem(customer),
			PreferredTime: preferredTime(customer),
		})
	}

	return report
}

// customerIdentity resolves who a bill belongs to: the customer name when
// it is present and not the literal guest label, then the phone number,
// then the shared guest identity.
func customerIdentity(bill models.Bill) string {
	if bill.CustomerName != nil && *bill.CustomerName != "" && *bill.CustomerName != guestIdentity {
		return *bill.CustomerName
	}
	if bill.CustomerPhone != nil && *bill.CustomerPhone != "" {
		return *bill.CustomerPhone
	}
	return guestIdentity
}

// favoriteItem is the most-ordered item name, ties broken by first
// encounter. "None" when no line data was seen.
func favoriteItem(customer *customerStats) string {
	best := ""
	bestCount := 0
	for _, tally := range customer.items.collect() {
		if tally.count > bestCount {
			best = tally.name
			bestCount = tally.count
		}
	}
	if best == "" {
		return "None"
	}
	return best
}

// preferredTime buckets the customer's most frequent visit hour. The "No
// data" branch is unreachable for customers built from bills but kept so
// an empty accumulator never misreports.
func preferredTime(customer *customerStats) string {
	bestHour := -1
	bestCount := 0
	for _, tally := range customer.hours.collect() {
		if tally.count > bestCount {
			bestHour = tally.hour
			bestCount = tally.count
		}
	}
	switch {
	case bestHour < 0:
		return "No data"
	case bestHour < 12:
		return "Morning"
	case bestHour < 17:
		return "Afternoon"
	default:
		return "Evening"
	}
}

func hourKey(hour int) string {
	return strconv.Itoa(hour)
}
