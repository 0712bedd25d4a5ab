package order

// Find looks number up in last first and then, only when searchHistory is set,
// scans history in order.
func Find(last *Order, history []Order, number string, searchHistory bool) (Order, bool) {
	if number == "" {
		return Order{}, false
	}
	if last != nil && last.OrderNumber == number {
		return *last, true
	}
	if !searchHistory {
		return Order{}, false
	}
	for _, o := range history {
		if o.OrderNumber == number {
			return o, true
		}
	}
	return Order{}, false
}
