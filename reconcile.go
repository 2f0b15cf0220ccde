package checkbook

// Reconcile marks every record posted and recomputes the running balance
// in ascending id order, in place.
//
// The lowest-id record's stored balance is trusted as the opening
// balance: it is left as-is and seeds the running sum for every record
// after it. Reconcile reports whether there was anything to reconcile.
func (b *Book) Reconcile() bool {
	records := b.Records()
	if len(records) == 0 {
		return false
	}
	balance := records[0].Balance
	for i, r := range records {
		r.Posted = true
		if i == 0 {
			continue
		}
		balance = balance.Add(r.Amount)
		r.Balance = balance
	}
	return true
}
