package rbac

// RolePermission grants one resource action to a role.
type RolePermission struct {
	Role     string `gorm:"column:role;type:varchar(20);primaryKey"`
	Resource string `gorm:"column:resource;type:varchar(50);primaryKey"`
	Action   string `gorm:"column:action;type:varchar(50);primaryKey"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// roleParents lists the role each role inherits from.
var roleParents = map[string]string{
	"ADMIN":  "LEADER",
	"LEADER": "WORKER",
}

// DefaultPermissions are the grants seeded on startup. Inherited grants are
// not repeated.
var DefaultPermissions = []RolePermission{
	{Role: "WORKER", Resource: "request", Action: "create"},
	{Role: "WORKER", Resource: "history", Action: "read"},

	{Role: "LEADER", Resource: "acceptance", Action: "read"},
	{Role: "LEADER", Resource: "acceptance", Action: "decide"},

	{Role: "ADMIN", Resource: "request", Action: "read_all"},
	{Role: "ADMIN", Resource: "request", Action: "decide"},
	{Role: "ADMIN", Resource: "history", Action: "adjust"},
	{Role: "ADMIN", Resource: "holiday", Action: "create"},
	{Role: "ADMIN", Resource: "holiday", Action: "delete"},
	{Role: "ADMIN", Resource: "user", Action: "read"},
	{Role: "ADMIN", Resource: "rbac", Action: "read"},
}
