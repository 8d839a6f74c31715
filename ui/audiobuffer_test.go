package ui

import (
	"bytes"
	"io"
	"sync"
	"testing"
)

func TestAudioRingBuffer_BasicWriteRead(t *testing.T) {
	rb := NewAudioRingBuffer(16)

	data := []byte{1, 2, 3, 4, 5}
	rb.Write(data)

	if rb.Buffered() != 5 {
		t.Fatalf("expected 5 buffered bytes, got %d", rb.Buffered())
	}

	out := make([]byte, 5)
	n, err := rb.Read(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 || !bytes.Equal(out, data) {
		t.Fatalf("expected %v, got %v (n=%d)", data, out, n)
	}
}

func TestAudioRingBuffer_OverflowDropsOldest(t *testing.T) {
	rb := NewAudioRingBuffer(8)

	rb.Write([]byte{1, 2, 3, 4, 5, 6})
	// Overflows by 3, dropping the oldest 3 bytes.
	rb.Write([]byte{7, 8, 9, 10, 11})

	if rb.Buffered() != 8 {
		t.Fatalf("expected 8 buffered bytes, got %d", rb.Buffered())
	}

	out := make([]byte, 8)
	n, _ := rb.Read(out)
	expected := []byte{4, 5, 6, 7, 8, 9, 10, 11}
	if n != 8 || !bytes.Equal(out, expected) {
		t.Fatalf("expected %v, got %v (n=%d)", expected, out, n)
	}
}

func TestAudioRingBuffer_OverflowLargerThanCapacity(t *testing.T) {
	rb := NewAudioRingBuffer(4)

	rb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	if rb.Buffered() != 4 {
		t.Fatalf("expected 4 buffered bytes, got %d", rb.Buffered())
	}

	out := make([]byte, 4)
	n, _ := rb.Read(out)
	expected := []byte{5, 6, 7, 8}
	if n != 4 || !bytes.Equal(out, expected) {
		t.Fatalf("expected %v, got %v (n=%d)", expected, out, n)
	}
}

func TestAudioRingBuffer_WrapAround(t *testing.T) {
	rb := NewAudioRingBuffer(8)

	rb.Write([]byte{1, 2, 3, 4, 5, 6})
	out := make([]byte, 4)
	rb.Read(out)

	// readPos=4, writePos=6, count=2; this write wraps writePos.
	rb.Write([]byte{7, 8, 9, 10, 11})

	if rb.Buffered() != 7 {
		t.Fatalf("expected 7 buffered, got %d", rb.Buffered())
	}

	out = make([]byte, 7)
	n, _ := rb.Read(out)
	expected := []byte{5, 6, 7, 8, 9, 10, 11}
	if n != 7 || !bytes.Equal(out, expected) {
		t.Fatalf("expected %v, got %v (n=%d)", expected, out, n)
	}
}

func TestAudioRingBuffer_PartialRead(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	out := make([]byte, 3)
	n, err := rb.Read(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 bytes, got %d", n)
	}
	if rb.Buffered() != 5 {
		t.Fatalf("expected 5 remaining, got %d", rb.Buffered())
	}
}

func TestAudioRingBuffer_Clear(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Write([]byte{1, 2, 3, 4})
	rb.Clear()
	if rb.Buffered() != 0 {
		t.Fatalf("expected 0 buffered after clear, got %d", rb.Buffered())
	}
}

func TestAudioRingBuffer_CloseDrainsThenEOF(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Write([]byte{1, 2})
	rb.Close()

	out := make([]byte, 2)
	n, err := rb.Read(out)
	if err != nil || n != 2 {
		t.Fatalf("expected remaining data after close, got n=%d err=%v", n, err)
	}

	if _, err = rb.Read(out); err != io.EOF {
		t.Fatalf("expected io.EOF after close and drain, got %v", err)
	}
}

func TestAudioRingBuffer_CloseUnblocksReader(t *testing.T) {
	rb := NewAudioRingBuffer(16)

	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 4)
		_, err := rb.Read(buf)
		done <- err
	}()

	rb.Close()

	if err := <-done; err != io.EOF {
		t.Fatalf("expected io.EOF from blocked reader, got %v", err)
	}
}

func TestAudioRingBuffer_WriteAfterClose(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Close()

	rb.Write([]byte{1, 2, 3})

	if rb.Buffered() != 0 {
		t.Fatalf("expected 0 buffered after write to closed buffer, got %d", rb.Buffered())
	}
}

func TestAudioRingBuffer_ConcurrentReadWrite(t *testing.T) {
	rb := NewAudioRingBuffer(1024)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		data := make([]byte, 100)
		for i := 0; i < 100; i++ {
			for j := range data {
				data[j] = byte(i)
			}
			rb.Write(data)
		}
		rb.Close()
	}()

	received := 0
	go func() {
		defer wg.Done()
		buf := make([]byte, 64)
		for {
			n, err := rb.Read(buf)
			received += n
			if err == io.EOF {
				return
			}
		}
	}()

	wg.Wait()

	// Overflow may drop data, but never fabricate it.
	if received == 0 {
		t.Fatal("received 0 bytes")
	}
	if received > 10000 {
		t.Fatalf("received more bytes (%d) than written (10000)", received)
	}
}
