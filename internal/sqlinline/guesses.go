package sqlinline

// The entry fee is read from the event inside the insert so the guess's
// running total starts correctly even if the fee changes between read and
// submit. The unique index on (user_id, event_id) rejects duplicates.
const QInsertGuess = `--sql 8d4a1f26-b90e-473c-a6d8-52e7c0b39144
insert into guesses(id, event_id, user_id, value, total_donation_cents,
                    payment_method, payment_note, charity_id, user_name, team, is_paid, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::bigint,
        (select entry_fee_cents from events where id = $1::uuid),
        $4::text, $5::text, $6::text, $7::text, $8::text, false, now())
returning id, total_donation_cents, created_at;
`

const guessColumns = `id, event_id, user_id, value, total_donation_cents,
       payment_method, payment_note, charity_id, user_name, team, is_paid, created_at`

const QSelectGuessByID = `--sql 3a9c5e70-24d8-4b1f-96a3-c07e8d5b2f61
select ` + guessColumns + `
from guesses
where id = $1::uuid;
`

const QSelectUserEventGuess = `--sql f1b82d04-7c5a-4e39-80f6-d34a19c6e205
select ` + guessColumns + `
from guesses
where user_id = $1::text and event_id = $2::uuid;
`

const QListEventGuesses = `--sql 58e0c7a2-d16f-4930-b8c4-7f2a64d0e913
select ` + guessColumns + `
from guesses
where event_id = $1::uuid
order by created_at;
`

const QAddGuessDonation = `--sql a64f2e08-0b7d-41c5-9a28-3e5c81f7d096
update guesses
set total_donation_cents = total_donation_cents + $2::bigint
where id = $1::uuid
returning id;
`

const QSetGuessPaid = `--sql c95d7b31-8a0f-4e62-b1d9-40c3f6a8e527
update guesses
set is_paid = $2::boolean
where id = $1::uuid
returning id;
`
