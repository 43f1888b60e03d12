package model

// Role represents user roles in the system
type Role struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Code        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // MASTER_ADMIN, ADMIN, CASHIER
	Name        string       `gorm:"type:varchar(100)" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// Role codes as constants
const (
	RoleMasterAdmin = "MASTER_ADMIN"
	RoleAdmin       = "ADMIN"
	RoleCashier     = "CASHIER"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{
		Code:        RoleMasterAdmin,
		Name:        "Master Administrator",
		Description: "Full system access with all permissions",
	},
	{
		Code:        RoleAdmin,
		Name:        "Administrator",
		Description: "Administrative access without user management",
	},
	{
		Code:        RoleCashier,
		Name:        "Cashier",
		Description: "Point-of-sale access: orders, payments and customers",
	},
}

// CashierPermissionCodes is the permission set seeded onto the CASHIER role.
var CashierPermissionCodes = []string{
	"product:view",
	"stock:view",
	"customer:view",
	"customer:create",
	"order:view",
	"order:create",
	"order:update",
	"payment:view",
	"payment:create",
	"payment:verify",
}
