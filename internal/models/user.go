package models

// User owns positions by id and references a BankBalance record.
// Both are weak references into their stores.
type User struct {
	ID            string   `json:"id"`
	PositionIDs   []string `json:"positionIds"`
	BankBalanceID string   `json:"bankBalanceId"`
}

func (u *User) OwnsPosition(id string) bool {
	for _, pid := range u.PositionIDs {
		if pid == id {
			return true
		}
	}
	return false
}

func (u *User) RemovePosition(id string) {
	out := u.PositionIDs[:0]
	for _, pid := range u.PositionIDs {
		if pid != id {
			out = append(out, pid)
		}
	}
	u.PositionIDs = out
}
