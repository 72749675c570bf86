package infra

import (
	"errors"
	"fmt"
	"time"

	"github.com/drinkshop/backend/internal/configs"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	SQL *SQLConnection
)

// SQLConfig represents the configuration for a SQL database connection
type SQLConfig struct {
	Host        string
	Port        int
	DBName      string
	Username    string
	Password    string
	MaxPoolSize int
	MinPoolSize int
}

// SQLConnection encapsulates the MySQL database connection
type SQLConnection struct {
	DB   *gorm.DB
	Meta map[string]interface{}
}

// GetConn returns the database connection
func (c *SQLConnection) GetConn() (interface{}, error) {
	if c.DB == nil {
		return nil, errors.New("connection is nil")
	}
	return c.DB, nil
}

// GetMeta returns metadata about the connection
func (c *SQLConnection) GetMeta() (map[string]interface{}, error) {
	if c.Meta == nil {
		return nil, errors.New("meta is nil")
	}
	return c.Meta, nil
}

func (c *SQLConnection) IsLive() bool {
	return c.DB != nil
}

// BuildSQLConfig constructs the SQL configuration from app config
func BuildSQLConfig(config configs.Configs) (SQLConfig, error) {
	if config.MysqlHost == "" {
		return SQLConfig{}, errors.New("MYSQL_HOST not set")
	}
	if config.MysqlPort == 0 {
		return SQLConfig{}, errors.New("MYSQL_PORT not set")
	}
	if config.MysqlDbName == "" {
		return SQLConfig{}, errors.New("MYSQL_DB_NAME not set")
	}
	if config.MysqlUsername == "" {
		return SQLConfig{}, errors.New("MYSQL_USERNAME not set")
	}
	return SQLConfig{
		Host:        config.MysqlHost,
		Port:        config.MysqlPort,
		DBName:      config.MysqlDbName,
		Username:    config.MysqlUsername,
		Password:    config.MysqlPassword,
		MaxPoolSize: config.MysqlMaxPoolSize,
		MinPoolSize: config.MysqlMinPoolSize,
	}, nil
}

// initSQLConn initializes the SQL connection based on app configuration
func initSQLConn(config configs.Configs) {
	sqlConfig, err := BuildSQLConfig(config)
	if err != nil {
		log.Panic().Msg(err.Error())
	}

	db, err := CreateMySQLConnection(sqlConfig)
	if err != nil {
		log.Panic().Msg(err.Error())
	}

	SQL = &SQLConnection{
		DB: db,
		Meta: map[string]interface{}{
			"db_name": sqlConfig.DBName,
			"type":    DBTypeMySQL,
		},
	}
	log.Info().Msgf("Connected to MySQL database %s", sqlConfig.DBName)
}

// CreateMySQLConnection creates a MySQL connection from SQLConfig
func CreateMySQLConnection(config SQLConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Asia%%2FHo_Chi_Minh",
		config.Username, config.Password, config.Host, config.Port, config.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if config.MaxPoolSize > 0 {
		sqlDB.SetMaxOpenConns(config.MaxPoolSize)
	}
	if config.MinPoolSize > 0 {
		sqlDB.SetMaxIdleConns(config.MinPoolSize)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
