package domain

// Settings is the platform-wide configuration singleton. Writes are
// last-write-wins; the backend keeps no versions.
type Settings struct {
	WalletAddress     string  `json:"walletAddress"`
	MaintenanceMode   bool    `json:"maintenanceMode"`
	ProfitRate        float64 `json:"profitRate"`
	MinimumDeposit    float64 `json:"minimumDeposit"`
	MaximumWithdrawal float64 `json:"maximumWithdrawal"`
}

// DashboardStats is the admin reports summary.
type DashboardStats struct {
	TotalUsers         int     `json:"totalUsers"`
	TotalDeposits      float64 `json:"totalDeposits"`
	TotalWithdrawals   float64 `json:"totalWithdrawals"`
	TotalProfits       float64 `json:"totalProfits"`
	PendingDeposits    int     `json:"pendingDeposits"`
	PendingWithdrawals int     `json:"pendingWithdrawals"`
}
