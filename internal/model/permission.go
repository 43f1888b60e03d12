package model

// Permission represents an action that can be granted to users
type Permission struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "order:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Order"
}

// Default permissions for the system
var DefaultPermissions = []Permission{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	{Code: "user:update_permission", Name: "Update User Permissions"},
	// Branch management
	{Code: "branch:view", Name: "View Branch"},
	{Code: "branch:create", Name: "Create Branch"},
	{Code: "branch:update", Name: "Update Branch"},
	{Code: "branch:delete", Name: "Delete Branch"},
	// Catalog management
	{Code: "category:view", Name: "View Category"},
	{Code: "category:create", Name: "Create Category"},
	{Code: "category:update", Name: "Update Category"},
	{Code: "category:delete", Name: "Delete Category"},
	{Code: "product:view", Name: "View Product"},
	{Code: "product:create", Name: "Create Product"},
	{Code: "product:update", Name: "Update Product"},
	{Code: "product:delete", Name: "Delete Product"},
	// Stock management
	{Code: "stock:view", Name: "View Stock"},
	{Code: "stock:create", Name: "Create Stock"},
	{Code: "stock:update", Name: "Update Stock"},
	{Code: "stock:delete", Name: "Delete Stock"},
	{Code: "movement:view", Name: "View Stock Movement"},
	{Code: "movement:create", Name: "Record Stock Movement"},
	{Code: "batch:view", Name: "View Product Batch"},
	{Code: "batch:create", Name: "Create Product Batch"},
	{Code: "batch:update", Name: "Update Product Batch"},
	{Code: "batch:delete", Name: "Delete Product Batch"},
	// Customer management
	{Code: "customer:view", Name: "View Customer"},
	{Code: "customer:create", Name: "Create Customer"},
	{Code: "customer:update", Name: "Update Customer"},
	{Code: "customer:delete", Name: "Delete Customer"},
	// Sales
	{Code: "order:view", Name: "View Order"},
	{Code: "order:create", Name: "Create Order"},
	{Code: "order:update", Name: "Update Order"},
	{Code: "order:delete", Name: "Delete Order"},
	{Code: "payment:view", Name: "View Payment"},
	{Code: "payment:create", Name: "Create Payment"},
	{Code: "payment:verify", Name: "Verify Payment"},
	// Reporting
	{Code: "report:view", Name: "View Sales Report"},
}
