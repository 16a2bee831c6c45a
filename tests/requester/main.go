package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const baseURL = "http://localhost:8080/orders/"

func main() {
	for {
		var g errgroup.Group
		n := rand.Intn(10) + 1
		for i := 0; i < n; i++ {
			g.Go(doRequest)
		}
		if err := g.Wait(); err != nil {
			fmt.Println("request error:", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() error {
	// mostly existing low ids, occasionally a miss
	id := rand.Intn(20) + 1
	if rand.Intn(5) == 0 {
		id = rand.Intn(100000) + 100000
	}

	url := fmt.Sprintf("%s%d", baseURL, id)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	fmt.Println("GET", url, "->", resp.Status)
	return resp.Body.Close()
}
