package bot

import "sync"

// Flow names.
const (
	flowAddOperator = "add_operator"
	flowAddSenior   = "add_senior"
	flowWarning     = "issue_warning"
	flowPaySalary   = "pay_salary"
	flowOrder       = "create_order"
)

// Order flow steps, walked in this exact order.
const (
	stepCustomer = "customer"
	stepVehicle  = "vehicle"
	stepProduct  = "product"
	stepAmount   = "amount"
)

// Session is one user's in-flight flow: the flow name, the step the next
// free-text reply belongs to, fields collected so far, and the entity the
// flow targets (warning/salary recipient, order shift).
type Session struct {
	Flow     string
	Step     string
	Fields   map[string]string
	TargetID int64
}

// SessionStore keeps sessions in memory, keyed by account id. Sessions do
// not survive a restart and have no timeout.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Begin replaces any existing session for the account.
func (s *SessionStore) Begin(accountID int64, flow, step string, targetID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		Flow:     flow,
		Step:     step,
		Fields:   make(map[string]string),
		TargetID: targetID,
	}
	s.sessions[accountID] = session
	return session
}

// Get returns the account's active session, or nil.
func (s *SessionStore) Get(accountID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[accountID]
}

// Clear removes the account's session, if any.
func (s *SessionStore) Clear(accountID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, accountID)
}
