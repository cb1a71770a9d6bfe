package service

import "gorm.io/gorm"

// rollback 回滚事务；tx 为 nil（单测 mock 场景）时不做任何事
func rollback(tx *gorm.DB) {
	if tx != nil {
		tx.Rollback()
	}
}

// commit 提交事务；tx 为 nil 时视为成功
func commit(tx *gorm.DB) error {
	if tx == nil {
		return nil
	}
	return tx.Commit().Error
}
