// This file is released into the public domain.

//go:build ignore

// A minimal program that signs a GET request for one object
// and prints the headers that would go over the wire.
//
// Provide your own credentials:
//  OSS_ACCESS_KEY_ID=… OSS_ACCESS_KEY_SECRET=… go run "this file"
package main

import (
	"fmt"
	"net/http"
	"os"

	signature "blitznote.com/src/oss.signature"
)

func main() {
	cred := signature.Credential{
		AccessKeyID:     os.Getenv("OSS_ACCESS_KEY_ID"),
		AccessKeySecret: os.Getenv("OSS_ACCESS_KEY_SECRET"),
	}

	req, _ := http.NewRequest(http.MethodGet,
		"https://bucket.oss-cn-hangzhou.aliyuncs.com/example.txt", nil)
	err := signature.Sign(req, cred, signature.SignContext{
		Region: "cn-hangzhou", Product: "oss",
		Bucket: "bucket", Key: "example.txt",
	}, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, name := range []string{"Authorization", "x-oss-date", "x-oss-content-sha256"} {
		fmt.Printf("%s: %s\n", name, req.Header.Get(name))
	}
}
