package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/model-monitor-service/pkg/models"
	monitorGrpc "liyu1981.xyz/model-monitor-service/pkg/grpc"
	"liyu1981.xyz/model-monitor-service/pkg/ui"
)

var maxMonitors = flag.Int("n", 1000, "number of monitors to create")
var httpHostPort = flag.String("http", "127.0.0.1:1080", "http host:port")
var grpcHostPort = flag.String("grpc", "127.0.0.1:10801", "grpc host:port")
var repoID = flag.String("repo", "", "repo id owning the model")
var modelID = flag.String("model", "", "model id to attach monitors to")
var token = flag.String("token", "", "auth token, not needed when auth is disabled")

var grpcClient monitorGrpc.MonitorServiceClient

// the server redirects on success, keep the 303 instead of following it
var httpClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

var rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	flag.Parse()
	if *repoID == "" || *modelID == "" {
		log.Fatal("-repo and -model are required")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", *httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(*grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = monitorGrpc.NewMonitorServiceClient(conn)

	fmt.Printf("gRPC client connected\n")

	var created, rejected atomic.Int64

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < *maxMonitors; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if createMonitor(i) {
				created.Add(1)
			} else {
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"created %v monitors (%v rejected): used time=%v seconds, throughput=%v action/second\n",
		created.Load(), rejected.Load(), usedTime.Seconds(), float64(*maxMonitors)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < *maxMonitors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listMonitors()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"listed monitors %v times: used time=%v seconds, throughput=%v action/second\n",
		*maxMonitors, usedTime.Seconds(), float64(*maxMonitors)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func createMonitor(i int) bool {
	cadences := models.AlertCadenceValues()
	metrics := models.AlertMetricValues()

	form := url.Values{}
	form.Set("cadence", cadences[i%len(cadences)])
	form.Set("metric", metrics[i%len(metrics)])
	form.Set("threshold", fmt.Sprintf("%.4f", rndFloat64(0.0001, 1.0, 4)))
	form.Set("title", fmt.Sprintf("bench %d", i))
	form.Add("methods", "stdout")

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://%s%snew", *httpHostPort, ui.AlertsPath(*repoID, *modelID)),
		strings.NewReader(form.Encode()))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if *token != "" {
		req.Header.Set("Authorization", "Bearer "+*token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusSeeOther
}

func listMonitors() {
	req, err := structpb.NewStruct(map[string]any{"model_id": *modelID})
	if err != nil {
		panic(err)
	}
	ctx := context.Background()
	if *token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+*token)
	}
	resp, err := grpcClient.ListMonitors(ctx, req)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	if !resp.GetFields()["success"].GetBoolValue() {
		fmt.Printf("\nresponse success = false: %v\n", resp)
	}
}
