package authorization

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent
}

// Principal is the caller resolved once at the HTTP boundary. An admin
// principal carries no agent; an agent principal always does.
type Principal struct {
	role    Role
	agentID uint
}

func AdminPrincipal() Principal {
	return Principal{role: RoleAdmin}
}

func AgentPrincipal(agentID uint) Principal {
	return Principal{role: RoleAgent, agentID: agentID}
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// AgentID returns the calling agent and whether the principal is an agent.
func (p Principal) AgentID() (uint, bool) {
	if p.role != RoleAgent {
		return 0, false
	}
	return p.agentID, true
}
