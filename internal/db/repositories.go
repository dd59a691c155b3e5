package db

import "gorm.io/gorm"

type Repositories struct {
	Members *MemberRepository
	Logs    *LogRepository
	Orders  *OrderRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Members: NewMemberRepository(database),
		Logs:    NewLogRepository(database),
		Orders:  NewOrderRepository(database),
	}
}
