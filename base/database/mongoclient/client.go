// Package mongoclient dials mongo with the pool sizing and write
// concern conventions shared by every binary.
package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/auctionhouse/base/log"
)

const socketTimeout = 60 * time.Second

// Client couples the driver client with the database it serves.
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient is ConnectMongoClient, panicking when the
// database cannot be reached.
func MustConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) *Client {
	cli, err := ConnectMongoClient(uri, authDBName, dbName, ssl, setSafe, poolSizeMultiplier)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient dials uri, verifies dbName is reachable and
// returns the wrapped client. poolSizeMultiplier scales the per host
// connection pool with the core count.
func ConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) (*Client, error) {
	ctx := context.Background()

	conn, err := connstring.Parse(uri)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": uri, "dbName": dbName, "err": err}).Error("fail to parse connstring")
		return nil, err
	}

	client, err := mongo.NewClient(clientOptions(uri, authDBName, conn, ssl, setSafe, poolSizeMultiplier))
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoHosts": conn.Hosts, "dbName": dbName, "err": err}).Error("fail to create mongo client")
		return nil, err
	}

	if err := client.Connect(ctx); err != nil {
		log.Log().WithFields(log.Fields{"mongoHosts": conn.Hosts, "dbName": dbName, "err": err}).Error("fail to connect mongo db")
		return nil, err
	}

	// proves both auth and dbName before anyone queries
	if _, err := client.Database(dbName).ListCollectionNames(ctx, bson.D{}); err != nil {
		log.Log().WithFields(log.Fields{"mongoHosts": conn.Hosts, "dbName": dbName, "err": err}).Error("fail to test mongo db")
		return nil, err
	}

	log.Log().WithFields(log.Fields{"mongoHosts": conn.Hosts, "db": dbName}).Info("mongo connected")
	return &Client{
		DbName: dbName,
		Client: client,
	}, nil
}

func clientOptions(uri, authDBName string, conn connstring.ConnString, ssl, setSafe bool, poolSizeMultiplier float64) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetSocketTimeout(socketTimeout).
		SetRetryWrites(true)

	// credentials without an explicit authSource authenticate against
	// authDBName instead of the data db
	if conn.Username != "" && conn.AuthSource == "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           conn.AuthMechanism,
			AuthMechanismProperties: conn.AuthMechanismProperties,
			Username:                conn.Username,
			Password:                conn.Password,
			PasswordSet:             conn.PasswordSet,
			AuthSource:              authDBName,
		})
	}

	// the driver keeps one pool per host, split the budget so the
	// total stays at cores * multiplier
	total := int(float64(runtime.NumCPU()) * poolSizeMultiplier)
	perHost := (total + len(conn.Hosts) - 1) / len(conn.Hosts)
	opts.SetMinPoolSize(uint64(perHost / 4))
	opts.SetMaxPoolSize(uint64(perHost))
	log.Log().WithField("poolSize", perHost).Info("mongo driver pool size")

	if ssl {
		opts.SetTLSConfig(&tls.Config{})
	}
	if setSafe {
		// wait for a majority of the replica set on writes
		opts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	return opts
}
